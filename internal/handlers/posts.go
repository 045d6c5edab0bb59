package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/BorisDmv/blog-service-demo/internal/db"
	"github.com/BorisDmv/blog-service-demo/internal/models"
)

type PostsHandler struct {
	store        *db.Store
	log          logrus.FieldLogger
	maxBodyBytes int64
}

// NewPostsHandler serves /posts from store. A maxBodyBytes of zero leaves
// request bodies unbounded.
func NewPostsHandler(store *db.Store, log logrus.FieldLogger, maxBodyBytes int64) *PostsHandler {
	return &PostsHandler{store: store, log: log, maxBodyBytes: maxBodyBytes}
}

// Create decodes a NewPostPayload and answers with the new post id.
// Bad JSON and invalid payloads both get a bare 400.
func (h *PostsHandler) Create(w http.ResponseWriter, r *http.Request) {
	body := r.Body
	if h.maxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	var payload models.NewPostPayload
	if err := dec.Decode(&payload); err != nil {
		h.log.WithError(err).Debug("rejected post: unreadable body")
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if !payload.IsValid() {
		h.log.WithField("title", payload.Title).Debug("rejected post: title and categories are required")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	id := h.store.CreatePost(payload.Title, payload.Content, payload.Categories)
	h.log.WithField("id", id).Debug("post created")

	out, err := encodeJSON(id, false)
	if err != nil {
		h.internalError(w, errors.Wrap(err, "encode post id"))
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// List answers with every post ordered by id, indented.
func (h *PostsHandler) List(w http.ResponseWriter, r *http.Request) {
	out, err := encodeJSON(h.store.AllPosts(), true)
	if err != nil {
		h.internalError(w, errors.Wrap(err, "encode posts"))
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// encodeJSON renders v without HTML escaping and without a trailing newline.
var encodeJSON = func(v interface{}, indent bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (h *PostsHandler) internalError(w http.ResponseWriter, err error) {
	h.log.WithError(err).Error("internal error")
	w.WriteHeader(http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
