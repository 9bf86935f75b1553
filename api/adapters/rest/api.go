package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"keyword-index/api/core"
	"log/slog"
	"net/http"
)

const (
	pathID = "id"
	// texts are capped by the indexer; the body cap only keeps the decoder bounded
	maxBodySize = 4 << 20
)

func encodeReply(w io.Writer, reply any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(reply); err != nil {
		return fmt.Errorf("could not encode reply: %v", err)
	}
	return nil
}

func writeReply(w http.ResponseWriter, log *slog.Logger, reply any) {
	w.Header().Set("Content-Type", "application/json")
	if err := encodeReply(w, reply); err != nil {
		log.Error("failed to encode", "error", err)
	}
}

func writeStatus(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = encodeReply(w, core.ErrorReply{Error: http.StatusText(status)})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return core.ErrTooLarge
		}
		return fmt.Errorf("%v: %w", err, core.ErrBadArguments)
	}
	return nil
}

func writeError(w http.ResponseWriter, log *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, core.ErrBadArguments):
		writeStatus(w, http.StatusBadRequest)
	case errors.Is(err, core.ErrTooLarge):
		writeStatus(w, http.StatusRequestEntityTooLarge)
	case errors.Is(err, core.ErrNotFound):
		writeStatus(w, http.StatusNotFound)
	case errors.Is(err, core.ErrAlreadyExists):
		log.Debug("service " + op + " already running")
		writeStatus(w, http.StatusAccepted)
	case errors.Is(err, core.ErrServiceUnavailable):
		log.Debug("service " + op + " unavailable")
		writeStatus(w, http.StatusServiceUnavailable)
	default:
		log.Warn("service "+op+" failed", "error", err)
		writeStatus(w, http.StatusInternalServerError)
	}
}

func NewPingHandler(log *slog.Logger, pingers map[string]core.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reply := core.PingResponse{
			Replies: make(map[string]core.PingStatus, len(pingers)),
		}
		for name, pinger := range pingers {
			err := pinger.Ping(r.Context())
			if err == nil {
				reply.Replies[name] = core.StatusPingOK
				continue
			}
			if errors.Is(err, core.ErrServiceUnavailable) {
				log.Debug("service unavailable", "service", name)
			} else {
				log.Warn("service ping failed", "service", name, "error", err)
			}
			reply.Replies[name] = core.StatusPingUnavailable
		}
		writeReply(w, log, reply)
	}
}

func NewLoginHandler(log *slog.Logger, auth core.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var login core.LoginRequest
		if err := decodeBody(w, r, &login); err != nil {
			writeError(w, log, "login", err)
			return
		}

		token, err := auth.CreateToken(login.Name, login.Password)
		if err != nil {
			if errors.Is(err, core.ErrInvalidCredentials) {
				log.Debug("admin login refused", "name", login.Name)
				writeStatus(w, http.StatusUnauthorized)
				return
			}
			log.Error("failed to create token", "error", err)
			writeStatus(w, http.StatusInternalServerError)
			return
		}
		writeReply(w, log, core.TokenReply{Token: token})
	}
}

func NewKeywordsHandler(log *slog.Logger, extractor core.Extractor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req core.TextRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeError(w, log, "extract", err)
			return
		}
		keywords, err := extractor.Extract(r.Context(), req.Text)
		if err != nil {
			writeError(w, log, "extract", err)
			return
		}
		writeReply(w, log, core.KeywordsResult{Keywords: keywords, Total: int64(len(keywords))})
	}
}

func NewTermsHandler(log *slog.Logger, extractor core.Extractor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req core.TextRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeError(w, log, "terms", err)
			return
		}
		terms, err := extractor.Terms(r.Context(), req.Text)
		if err != nil {
			writeError(w, log, "terms", err)
			return
		}
		writeReply(w, log, core.TermsResult{Terms: terms, Total: int64(len(terms))})
	}
}

func NewIndexHandler(log *slog.Logger, indexer core.Indexer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var doc core.Document
		if err := decodeBody(w, r, &doc); err != nil {
			writeError(w, log, "index", err)
			return
		}
		if doc.ID == "" {
			writeStatus(w, http.StatusBadRequest)
			return
		}
		keywords, err := indexer.Index(r.Context(), doc)
		if err != nil {
			writeError(w, log, "index", err)
			return
		}
		writeReply(w, log, core.KeywordsResult{Keywords: keywords, Total: int64(len(keywords))})
	}
}

func NewDocumentHandler(log *slog.Logger, indexer core.Indexer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue(pathID)
		if id == "" {
			writeStatus(w, http.StatusBadRequest)
			return
		}
		terms, err := indexer.Document(r.Context(), id)
		if err != nil {
			writeError(w, log, "document", err)
			return
		}
		writeReply(w, log, core.TermsResult{Terms: terms, Total: int64(len(terms))})
	}
}

func NewStatsHandler(log *slog.Logger, indexer core.Indexer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := indexer.Stats(r.Context())
		if err != nil {
			writeError(w, log, "stats", err)
			return
		}
		writeReply(w, log, stats)
	}
}

func NewReloadHandler(log *slog.Logger, indexer core.Indexer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := indexer.Reload(r.Context()); err != nil {
			writeError(w, log, "reload", err)
		}
	}
}

func NewDropHandler(log *slog.Logger, indexer core.Indexer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := indexer.Drop(r.Context()); err != nil {
			writeError(w, log, "drop", err)
		}
	}
}
