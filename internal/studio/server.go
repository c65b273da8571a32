package studio

import (
	"fmt"
	"io/fs"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"github.com/Rana718/tablefill/internal/seeder"
	"github.com/fatih/color"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
)

type Server struct {
	app     *fiber.App
	service *Service
	port    int
	timeout time.Duration
}

type Options struct {
	Port           int
	RequestTimeout time.Duration
	Exclusions     *seeder.Exclusions
	// Quiet disables the access log.
	Quiet bool
}

func NewServer(sd *seeder.Seeder, catalog Catalog, opts Options) *Server {
	engine := html.NewFileSystem(http.FS(TemplatesFS), ".html")

	app := fiber.New(fiber.Config{
		Views:                 engine,
		DisableStartupMessage: true,
	})

	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 60 * time.Second
	}

	server := &Server{
		app:     app,
		service: NewService(sd, catalog, opts.Exclusions),
		port:    opts.Port,
		timeout: opts.RequestTimeout,
	}

	app.Use(recover.New())
	if !opts.Quiet {
		app.Use(logger.New())
	}
	server.setupRoutes()
	return server
}

func (s *Server) setupRoutes() {
	staticFS, _ := fs.Sub(StaticFS, "static")
	s.app.Use("/static", filesystem.New(filesystem.Config{
		Root: http.FS(staticFS),
	}))

	s.app.Get("/", s.handleIndex)
	s.app.Post("/generate-data", s.handleGenerateData)

	api := s.app.Group("/api")
	api.Get("/tables", s.handleGetTables)
	api.Get("/tables/:name/schema", s.handleGetSchema)
	api.Post("/tables/:name/preview", s.handlePreview)
}

// App exposes the fiber app, mainly for app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Start(openBrowser bool) error {
	url := fmt.Sprintf("http://localhost:%d", s.port)

	color.Cyan("🚀 tablefill running on %s", url)

	if openBrowser {
		go s.openBrowser(url)
	}

	return s.app.Listen(fmt.Sprintf(":%d", s.port))
}

func (s *Server) Shutdown(timeout time.Duration) error {
	return s.app.ShutdownWithTimeout(timeout)
}

func (s *Server) openBrowser(url string) {
	var cmd string
	var args []string

	switch runtime.GOOS {
	case "windows":
		cmd = "cmd"
		args = []string{"/c", "start", url}
	case "darwin":
		cmd = "open"
		args = []string{url}
	default:
		cmd = "xdg-open"
		args = []string{url}
	}

	exec.Command(cmd, args...).Start()
}
