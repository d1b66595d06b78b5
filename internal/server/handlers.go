package server

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/zeebo/blake3"
	"go.uber.org/zap"

	"github.com/hyperjump/yomu/internal/models"
	"github.com/hyperjump/yomu/internal/segment"
	"github.com/hyperjump/yomu/internal/storage"
	"github.com/hyperjump/yomu/internal/textdecode"
)

func (s *Server) handleAnnotate(w http.ResponseWriter, r *http.Request) {
	var req models.PageRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBodyBytes)).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.respondError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.annotate(w, r, req)
}

func (s *Server) handleAnnotateRaw(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.respondError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		s.respondError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	text, encoding, err := textdecode.Decode(body)
	if err != nil {
		s.respondError(w, http.StatusUnsupportedMediaType, err.Error())
		return
	}

	req := models.PageRequest{Text: text}
	q := r.URL.Query()
	if req.StartPosition, err = queryInt(q, "start_position"); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.PageSize, err = queryInt(q, "page_size"); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.log(r).Debug("raw annotate request", zap.String("encoding", encoding), zap.Int("bytes", len(body)))
	s.annotate(w, r, req)
}

func (s *Server) annotate(w http.ResponseWriter, r *http.Request, req models.PageRequest) {
	if err := req.Validate(s.config.Annotate.DefaultPageSize, s.config.Annotate.MaxPageSize); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	logger := s.log(r)
	logger.Debug("annotate request",
		zap.Int("start_position", req.StartPosition),
		zap.Int("page_size", req.PageSize),
	)
	page, err := s.annotator.AnnotatePage(r.Context(), req.Text, req.StartPosition, req.PageSize)
	if err != nil {
		if errors.Is(err, segment.ErrSegmentation) {
			logger.Warn("segmentation failed", zap.Error(err))
			s.respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		logger.Error("annotate failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondCacheable(w, r, page)
}

func (s *Server) handleKanji(w http.ResponseWriter, r *http.Request) {
	char, err := url.PathUnescape(chi.URLParam(r, "char"))
	if err != nil || utf8.RuneCountInString(char) != 1 {
		s.respondError(w, http.StatusBadRequest, "expected a single character")
		return
	}
	c, _ := utf8.DecodeRuneInString(char)
	meta, err := s.store.LookupKanji(r.Context(), c)
	if err != nil {
		s.log(r).Error("kanji lookup failed", zap.String("kanji", char), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if meta == nil {
		s.respondError(w, http.StatusNotFound, "kanji not found")
		return
	}
	s.respondCacheable(w, r, meta)
}

// handleHealth reports 503 when the dictionary store cannot be queried.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if _, err := s.store.CountKanji(r.Context()); err != nil {
		s.log(r).Warn("health: dictionary unavailable", zap.Error(err))
		s.respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "error": err.Error()})
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	kanjiCount, err := s.store.CountKanji(ctx)
	if err != nil {
		s.log(r).Error("status: count kanji failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	wordCount, err := s.store.CountWords(ctx)
	if err != nil {
		s.log(r).Error("status: count words failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	resp := map[string]interface{}{
		"kanji": kanjiCount,
		"words": wordCount,
	}

	// Add configuration info
	configInfo := map[string]interface{}{
		"sqlite_driver":        storage.DriverType(),
		"segmenter_dictionary": s.config.Segmenter.Dictionary,
		"database_path":        s.config.Storage.DatabasePath,
		"default_page_size":    s.config.Annotate.DefaultPageSize,
		"max_page_size":        s.config.Annotate.MaxPageSize,
	}
	if size, err := storage.DatabaseSize(s.config.Storage.DatabasePath); err == nil {
		resp["database_size_bytes"] = size
	}
	resp["config"] = configInfo
	s.respondJSON(w, http.StatusOK, resp)
}

func queryInt(q url.Values, key string) (int, error) {
	v := q.Get(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.New("invalid " + key)
	}
	return n, nil
}

// respondCacheable writes data with a BLAKE3 ETag and answers a matching If-None-Match with 304.
func (s *Server) respondCacheable(w http.ResponseWriter, r *http.Request, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	sum := blake3.Sum256(body)
	etag := `"` + hex.EncodeToString(sum[:16]) + `"`
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(append(body, '\n'))
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
