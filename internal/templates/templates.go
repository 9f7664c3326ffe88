package templates

import (
	"embed"
	"html/template"
	"io"

	"github.com/knagata/partstrack/internal/entities"
)

//go:embed pages/*.html
var pages embed.FS

var t = template.Must(template.ParseFS(pages, "pages/*.html"))

type LoginData struct {
	Error string
}

type DashboardData struct {
	Username string
	Role     string
	Flash    string
}

type FormData struct {
	Flash string
}

type OrderListData struct {
	Flash string
	Parts []entities.OrderedPart
}

type UninspectedData struct {
	Flash string
	Parts []entities.ReceivedPart
}

func Render(w io.Writer, name string, data any) error {
	return t.ExecuteTemplate(w, name, data)
}
