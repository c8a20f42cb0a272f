package article

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	artUC "newsroom-cms/internal/usecase/article"
	"newsroom-cms/internal/usecase/media"
)

// Article writes accept two shapes: plain JSON for text-only changes and
// multipart/form-data when an image file rides along. The multipart field
// names mirror the JSON keys.

func isMultipart(r *http.Request) bool {
	ct, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && ct == "multipart/form-data"
}

// imageFromForm pulls the optional image file out of an already-parsed
// multipart form. A missing file part is not an error.
func imageFromForm(r *http.Request) (*media.Upload, error) {
	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	// The handler finishes with the reader before returning, so closing via
	// the request body teardown is sufficient; no explicit Close here.
	return &media.Upload{Content: file, Name: header.Filename}, nil
}

func parseCreateRequest(r *http.Request) (artUC.CreateInput, error) {
	if !isMultipart(r) {
		var req struct {
			Title    string `json:"title"`
			Subtitle string `json:"subtitle"`
			Body     string `json:"body"`
			Section  string `json:"section"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return artUC.CreateInput{}, err
		}
		return artUC.CreateInput{
			Title:    req.Title,
			Subtitle: req.Subtitle,
			Body:     req.Body,
			Section:  req.Section,
		}, nil
	}

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return artUC.CreateInput{}, err
	}
	image, err := imageFromForm(r)
	if err != nil {
		return artUC.CreateInput{}, err
	}
	return artUC.CreateInput{
		Title:    r.FormValue("title"),
		Subtitle: r.FormValue("subtitle"),
		Body:     r.FormValue("body"),
		Section:  r.FormValue("section"),
		Image:    image,
	}, nil
}

func parseUpdateRequest(r *http.Request, id string) (artUC.UpdateInput, error) {
	in := artUC.UpdateInput{ID: id}

	if !isMultipart(r) {
		var req struct {
			Title    *string `json:"title"`
			Subtitle *string `json:"subtitle"`
			Body     *string `json:"body"`
			Section  *string `json:"section"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return in, err
		}
		in.Title = req.Title
		in.Subtitle = req.Subtitle
		in.Body = req.Body
		in.Section = req.Section
		return in, nil
	}

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return in, err
	}
	// Absent form fields mean "leave unchanged", same as absent JSON keys.
	fields := r.MultipartForm.Value
	if v, ok := fields["title"]; ok && len(v) > 0 {
		in.Title = &v[0]
	}
	if v, ok := fields["subtitle"]; ok && len(v) > 0 {
		in.Subtitle = &v[0]
	}
	if v, ok := fields["body"]; ok && len(v) > 0 {
		in.Body = &v[0]
	}
	if v, ok := fields["section"]; ok && len(v) > 0 {
		in.Section = &v[0]
	}
	image, err := imageFromForm(r)
	if err != nil {
		return in, err
	}
	in.Image = image
	return in, nil
}

// maxFormMemory bounds the in-memory portion of a multipart parse; larger
// file parts spill to disk. The request body itself is already capped by the
// input validation middleware.
const maxFormMemory = 4 << 20
