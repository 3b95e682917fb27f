package app

import (
	"io/fs"
	"log"
	"net/http"
	"sync"

	"github.com/harborline/wey-services/trash-pickup/internal/pickup"
)

// Server wires the pickup calculators to HTTP. The reference data is
// loaded once at construction and swapped atomically on admin reload;
// everything else is stateless per request.
type Server struct {
	mu      sync.RWMutex
	data    *pickup.ReferenceData
	dataFS  fs.FS
	dataDir string

	store     *AddressStore
	limiter   *ipLimiter
	AdminMode bool
}

// NewServer loads the reference data from dir within fsys and returns a
// server ready to register routes. A load failure is fatal to the caller:
// the service must not start with partial data.
func NewServer(fsys fs.FS, dir string, store *AddressStore) (*Server, error) {
	data, err := pickup.LoadReferenceData(fsys, dir)
	if err != nil {
		return nil, err
	}
	return &Server{
		data:    data,
		dataFS:  fsys,
		dataDir: dir,
		store:   store,
		limiter: newIPLimiter(RequestsPerMinute, BurstSize),
	}, nil
}

// Data returns the current reference data snapshot.
func (s *Server) Data() *pickup.ReferenceData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Reload re-reads the reference data and swaps it in. On failure the old
// data stays in place; the swap only happens when the whole load
// succeeds.
func (s *Server) Reload() error {
	data, err := pickup.LoadReferenceData(s.dataFS, s.dataDir)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	log.Printf("Reference data reloaded: %d streets, %d holidays, %d zones",
		len(data.Streets), len(data.Holidays), len(data.YardWasteWeeks))
	return nil
}

// Routes registers all handlers on mux.
func (s *Server) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/", s.ServeIndex)
	mux.HandleFunc("/api/lookup", s.rateLimit(s.HandleLookup))
	mux.HandleFunc("/api/streets/suggest", s.rateLimit(s.HandleSuggest))
	mux.HandleFunc("/api/config", s.rateLimit(s.HandleConfig))
	mux.HandleFunc("/api/address", s.rateLimit(s.HandleAddress))
	mux.HandleFunc("/api/download", s.rateLimit(s.HandleDownload))
	mux.HandleFunc("/api/subscribe/", s.rateLimit(s.HandleSubscribe))

	if s.AdminMode {
		mux.HandleFunc("/api/admin/reload", RequireAuth(s.HandleAdminReload))
	}
}
