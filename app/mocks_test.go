package app

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"log/slog"

	"github.com/ludo-technologies/archscan/domain"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockCollector struct {
	files []string
	err   error
	root  string
}

func (m *mockCollector) Collect(root string, include, ignore []string, maxFiles int) ([]string, error) {
	m.root = root
	if m.err != nil {
		return nil, m.err
	}
	return m.files, nil
}

type mockLoader struct {
	err      error
	progress domain.ProgressManager
}

func (m *mockLoader) Load(ctx context.Context, root string, paths []string) ([]domain.FileRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	records := make([]domain.FileRecord, len(paths))
	for i, p := range paths {
		records[i] = domain.FileRecord{Path: p, Imports: []domain.ImportRecord{}}
	}
	return records, nil
}

func (m *mockLoader) SetProgressManager(pm domain.ProgressManager) { m.progress = pm }

type mockValidationService struct {
	valid bool
	err   error
	got   []domain.FileRecord
}

func (m *mockValidationService) Validate(ctx context.Context, req domain.ValidationRequest, files []domain.FileRecord) (*domain.ValidationOutcome, error) {
	m.got = files
	if m.err != nil {
		return nil, m.err
	}
	return &domain.ValidationOutcome{
		Result: &domain.ValidationResult{Valid: m.valid, ArchitectureType: string(req.ArchitectureType)},
		Files:  files,
	}, nil
}

type mockValidationFormatter struct {
	called     bool
	lastFormat domain.OutputFormat
}

func (m *mockValidationFormatter) Write(outcome *domain.ValidationOutcome, format domain.OutputFormat, w io.Writer) error {
	m.called = true
	m.lastFormat = format
	_, err := w.Write([]byte("ok"))
	return err
}

type mockReportStore struct {
	saved   []string
	saveErr error
}

func (m *mockReportStore) Save(dir string, result *domain.ValidationResult) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	m.saved = append(m.saved, dir)
	return dir + "/architecture-test.json", nil
}

func (m *mockReportStore) LoadLatest(dir string) (*domain.ValidationResult, error) {
	return nil, domain.NewFileNotFoundError(dir, fs.ErrNotExist)
}

type mockReportWriter struct {
	called   bool
	lastPath string
	buf      bytes.Buffer
	err      error
}

func (mw *mockReportWriter) Write(writer io.Writer, outputPath string, format domain.OutputFormat, writeFunc func(io.Writer) error) error {
	mw.called = true
	mw.lastPath = outputPath
	if err := writeFunc(&mw.buf); err != nil {
		return err
	}
	return mw.err
}

type mockDepService struct {
	resp *domain.DependencyResponse
	err  error
}

func (m *mockDepService) Analyze(ctx context.Context, req domain.DependencyRequest, files []domain.FileRecord) (*domain.DependencyResponse, error) {
	return m.resp, m.err
}

type mockDepsFormatter struct{ called bool }

func (m *mockDepsFormatter) Write(resp *domain.DependencyResponse, format domain.OutputFormat, w io.Writer) error {
	m.called = true
	return nil
}
