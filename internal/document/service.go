package document

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"regie/internal/docbuilder"
	"regie/internal/platform/config"
)

// Result identifies the document written to disk.
type Result struct {
	DocxFileName string `json:"docxFileName"`
	DocxFilePath string `json:"docxFilePath"`
}

// Service validates requests, dispatches them to the matching renderer
// and writes the produced archive.
type Service struct {
	cfg config.Config
	log *slog.Logger
}

func New(cfg config.Config, log *slog.Logger) *Service {
	return &Service{cfg: cfg, log: log}
}

// Generate renders the requested document into its output directory.
// The written file is complete when the call returns: the archive is
// assembled in a temp file and renamed into place.
func (s *Service) Generate(req *Request) (Result, error) {
	if strings.TrimSpace(req.OutputDir) == "" {
		return Result{}, validationf("Missing required field: outputDir")
	}
	if strings.TrimSpace(req.DocumentType) == "" {
		return Result{}, validationf("Missing required field: documentType")
	}

	req.Options = req.Options.resolve(s.cfg)
	t := req.Type()

	name := Filename(t, req)
	path := filepath.Join(req.OutputDir, name)
	s.log.Info("generating document",
		slog.String("type", string(t)),
		slog.String("file", name),
		slog.Int("year", req.Year),
		slog.Int("month", req.Month))

	builder := docbuilder.NewDOCX()
	render, ok := renderers[t]
	if !ok {
		render = renderGeneric
	}
	if err := render(builder, req); err != nil {
		return Result{}, err
	}

	if err := os.MkdirAll(req.OutputDir, 0o755); err != nil {
		return Result{}, environmentf("cannot create output directory: %v", err)
	}
	if err := writeAtomic(path, builder); err != nil {
		return Result{}, environmentf("cannot write document: %v", err)
	}

	s.log.Info("document written", slog.String("path", path))
	return Result{DocxFileName: name, DocxFilePath: path}, nil
}

func writeAtomic(path string, d *docbuilder.DOCX) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".regie-*.docx")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := d.Save(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
