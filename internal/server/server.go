// Package server exposes jig and template rendering over HTTP.
package server

import (
	"bytes"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/OpenTraceLab/routerjig/internal/config"
	"github.com/OpenTraceLab/routerjig/pkg/drawing"
	"github.com/OpenTraceLab/routerjig/pkg/export"
	"github.com/OpenTraceLab/routerjig/pkg/jig"
	"github.com/OpenTraceLab/routerjig/pkg/template"
	"github.com/OpenTraceLab/routerjig/pkg/units"
)

// query parameter selecting the output format
const formatParam = "format"

var outputKeys = []string{config.KeyMargin, config.KeyStrokeWidth, config.KeyPixelsPerMM, config.KeyInches}

// jigParams maps query parameters to config keys for /api/v1/jig
var jigParams = keyMap(nil,
	config.KeyMinRadius, config.KeyBitDiam, config.KeyPinDiam, config.KeyCutDiam,
	config.KeyStepSize, config.KeySteps, config.KeySubSteps, config.KeyStepAngle,
	config.KeyShape, config.KeyLayers, config.KeyScrews, config.KeyScrewRails,
	config.KeyBigCircle, config.KeySmallCircle,
)

// templateParams maps query parameters to config keys for /api/v1/template
var templateParams = keyMap(map[string]string{
	"min-radius": config.KeyTemplateMinRadius,
	"max-radius": config.KeyTemplateMaxRadius,
	"step-size":  config.KeyTemplateStepSize,
	"angles":     config.KeyTemplateAngles,
	"fence":      config.KeyTemplateFence,
})

func keyMap(m map[string]string, keys ...string) map[string]string {
	if m == nil {
		m = map[string]string{}
	}
	for _, k := range append(keys, outputKeys...) {
		m[k] = k
	}
	return m
}

// Server serves rendered drawings
type Server struct {
	app    *fiber.App
	logger *log.Logger
}

// New creates a server; a nil logger discards request logs
func New(l *log.Logger) *Server {
	s := &Server{logger: l}
	s.app = fiber.New(fiber.Config{
		AppName:      "rjig",
		ErrorHandler: s.handleError,
	})

	s.app.Use(recover.New())
	s.app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	if l != nil {
		s.app.Use(logger.New(logger.Config{
			Format:     "[${time}] ${respHeader:X-Request-ID} ${status} - ${latency} ${method} ${path}?${queryParams}\n",
			TimeFormat: "15:04:05",
			Stream:     l.Writer(),
		}))
	}

	s.app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := s.app.Group("/api/v1")
	api.Get("/jig", s.handleJig)
	api.Get("/template", s.handleTemplate)
	api.Get("/presets", s.handlePresets)
	return s
}

// App returns the underlying fiber application
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until Shutdown
func (s *Server) Listen(addr string) error {
	if s.logger != nil {
		s.logger.Printf("listening on %s", addr)
	}
	return s.app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
}

// Shutdown stops the listener and waits for in-flight requests
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// requestConfig builds a fresh viper for one request from the defaults and
// its query; the server environment does not leak into responses
func requestConfig(c fiber.Ctx, keys map[string]string) (*viper.Viper, error) {
	v := config.NewDefaults()
	for name, value := range c.Queries() {
		if name == formatParam {
			continue
		}
		key, ok := keys[name]
		if !ok {
			return nil, &jig.ConfigError{Field: name, Input: value, Reason: "unknown parameter"}
		}
		v.Set(key, value)
	}
	return v, nil
}

func (s *Server) handleJig(c fiber.Ctx) error {
	v, err := requestConfig(c, jigParams)
	if err != nil {
		return err
	}
	p, err := config.JigParameters(v)
	if err != nil {
		return err
	}
	opts, err := config.DrawingOptions(v)
	if err != nil {
		return err
	}
	d, err := jig.Render(p, nil, opts...)
	if err != nil {
		return err
	}
	return s.send(c, v, d)
}

func (s *Server) handleTemplate(c fiber.Ctx) error {
	v, err := requestConfig(c, templateParams)
	if err != nil {
		return err
	}
	p, err := config.TemplateParameters(v)
	if err != nil {
		return err
	}
	opts, err := config.DrawingOptions(v)
	if err != nil {
		return err
	}
	d, err := template.Render(p, nil, opts...)
	if err != nil {
		return err
	}
	return s.send(c, v, d)
}

func (s *Server) handlePresets(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"screws":      config.ScrewPresets,
		"screw-rails": config.RailPresets,
	})
}

func (s *Server) send(c fiber.Ctx, v *viper.Viper, d *drawing.Drawing) error {
	f, err := export.ParseFormat(c.Query(formatParam))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	opts, err := config.ExportOptions(v)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := export.Write(&buf, d, f, opts); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, f.ContentType())
	return c.Send(buf.Bytes())
}

// statusFor maps an error to its HTTP status
func statusFor(err error) int {
	var (
		domain *jig.DomainError
		conf   *jig.ConfigError
		parse  *units.ParseError
		ferr   *fiber.Error
	)
	switch {
	case errors.As(err, &domain):
		return fiber.StatusUnprocessableEntity
	case errors.As(err, &conf), errors.As(err, &parse):
		return fiber.StatusBadRequest
	case errors.As(err, &ferr):
		return ferr.Code
	}
	return fiber.StatusInternalServerError
}

func (s *Server) handleError(c fiber.Ctx, err error) error {
	status := statusFor(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		if s.logger != nil {
			s.logger.Printf("request %s failed: %v", requestid.FromContext(c), err)
		}
		msg = strings.ToLower(fiber.ErrInternalServerError.Message)
	}
	return c.Status(status).JSON(fiber.Map{
		"error":      msg,
		"request_id": requestid.FromContext(c),
	})
}
