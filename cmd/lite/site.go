package main

import (
	"github.com/indigo-web/lite"
	"github.com/indigo-web/lite/config"
	"github.com/indigo-web/lite/content"
	"github.com/indigo-web/lite/http"
	"github.com/indigo-web/lite/kv"
	"github.com/indigo-web/lite/router/inbuilt"
	"github.com/indigo-web/lite/tmpl"
)

// newRouter builds the routes of the contact site: the landing page, the contact form,
// its submission and the server stats.
func newRouter(cfg *config.Config, app *lite.App) *inbuilt.Router {
	public := content.NewDir(cfg.Static.Root)
	templates := tmpl.New(content.NewDir(cfg.Templates.Root))

	r := inbuilt.New()

	r.Get("/", func() *http.Response {
		return content.Respond(public, "index.html")
	})

	r.Get("/contact", func() *http.Response {
		return templates.Respond("contact.html", kv.New())
	})

	r.Post("/contact", func(form *kv.Storage) *http.Response {
		ctx := kv.NewPrealloc(2).
			Add("name", form.ValueOr("name", "anonymous")).
			Add("message", form.Value("message"))

		return templates.Respond("thankyou.html", ctx)
	})

	r.Get("/stats", func() *http.Response {
		return http.JSON(app.Stats())
	})

	return r.Static(cfg.Static.Prefix, public)
}
