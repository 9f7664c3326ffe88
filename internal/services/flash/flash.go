package flash

import (
	"encoding/base64"
	"net/http"
)

// One-shot status messages carried across a redirect in a cookie. The cookie
// is cleared as soon as it is read, so a message renders exactly once.

const cookieName = "flash"

func Set(res http.ResponseWriter, message string) {
	http.SetCookie(res, &http.Cookie{
		Name:  cookieName,
		Value: base64.URLEncoding.EncodeToString([]byte(message)),
		Path:  "/",
	})
}

func Pop(res http.ResponseWriter, req *http.Request) string {
	cookie, err := req.Cookie(cookieName)
	if err != nil {
		return ""
	}

	http.SetCookie(res, &http.Cookie{
		Name:   cookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	message, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return ""
	}

	return string(message)
}
