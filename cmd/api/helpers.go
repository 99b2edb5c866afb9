package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"kinoteka/proj/internal/web"

	"github.com/go-chi/chi/v5"
)

func (app *Application) extractIDParam(w http.ResponseWriter, r *http.Request) (id int64, extracted bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		app.Http.BadRequest(w, r, "invalid ID")
		return 0, false
	}
	if id < 1 {
		app.Http.BadRequest(w, r, "id must be greater than zero")
		return 0, false
	}
	return id, true
}

// clientIP identifies the submitting client for rating upserts: the first
// X-Forwarded-For entry when a trusted proxy set one, the direct connection
// address otherwise.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// readForm parses an urlencoded POST body into dst via gorilla/schema.
func (app *Application) readForm(r *http.Request, dst any) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	return app.formDecoder.Decode(dst, r.PostForm)
}

func (app *Application) readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	maxBytes := 1_048_576 // 1MB
	src := http.MaxBytesReader(w, r.Body, int64(maxBytes))
	defer io.Copy(io.Discard, src)
	dec := json.NewDecoder(src)
	dec.DisallowUnknownFields()
	err := dec.Decode(dst)
	if err != nil {
		return handleJsonErr(err)
	}
	if err = dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must only contain a single JSON value")
	}
	return nil
}

func handleJsonErr(err error) error {
	var syntaxError *json.SyntaxError
	var unmarshalTypeError *json.UnmarshalTypeError
	var invalidUnmarshalError *json.InvalidUnmarshalError
	switch {
	case errors.As(err, &syntaxError):
		return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
	case errors.Is(err, io.ErrUnexpectedEOF):
		return errors.New("body contains badly-formed JSON")
	case errors.As(err, &unmarshalTypeError):
		if unmarshalTypeError.Field != "" {
			return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
		}
		return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
	case errors.Is(err, io.EOF):
		return errors.New("body must not be empty")
	case errors.As(err, &invalidUnmarshalError):
		panic(err)
	default:
		return err
	}
}

// genreYearContext loads the filter sidebar data shared by the HTML pages.
func (app *Application) genreYearContext(ctx context.Context) (*web.PageData, error) {
	genreYear, err := app.services.Movies.GenresAndYears(ctx)
	if err != nil {
		return nil, err
	}
	return &web.PageData{GenreYear: genreYear}, nil
}

// queryFragment rebuilds the applied multi-value parameters for pagination
// links, e.g. "year=1999&year=2003&genre=2&".
func queryFragment(params map[string][]string) string {
	var b strings.Builder
	for _, key := range []string{"year", "genre", "q"} {
		for _, value := range params[key] {
			b.WriteString(key + "=" + url.QueryEscape(value) + "&")
		}
	}
	return b.String()
}

func (app *Application) readPage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func (app *Application) render(w http.ResponseWriter, r *http.Request, status int, page string, data *web.PageData) {
	if err := app.templates.Render(w, status, page, data); err != nil {
		app.Http.ServerError(w, r, err, "")
	}
}
