package app

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludo-technologies/archscan/domain"
	svc "github.com/ludo-technologies/archscan/service"
)

type validateFixture struct {
	collector *mockCollector
	loader    *mockLoader
	service   *mockValidationService
	formatter *mockValidationFormatter
	store     *mockReportStore
	output    *mockReportWriter
}

func newValidateFixture() *validateFixture {
	return &validateFixture{
		collector: &mockCollector{files: []string{"src/a.ts", "src/b.ts"}},
		loader:    &mockLoader{},
		service:   &mockValidationService{valid: true},
		formatter: &mockValidationFormatter{},
		store:     &mockReportStore{},
		output:    &mockReportWriter{},
	}
}

func (f *validateFixture) build(t *testing.T) *ValidateUseCase {
	t.Helper()
	uc, err := NewValidateUseCaseBuilder().
		WithCollector(f.collector).
		WithLoader(f.loader).
		WithService(f.service).
		WithFormatter(f.formatter).
		WithOutputWriter(f.output).
		WithReportStore(f.store).
		WithProgress(svc.NoOpProgressManager{}).
		WithLogger(quietLogger()).
		Build()
	require.NoError(t, err)
	return uc
}

func validRequest() domain.ValidationRequest {
	return domain.ValidationRequest{
		Root:             "project",
		ArchitectureType: domain.ArchitectureFSD,
		OutputFormat:     domain.OutputFormatText,
		OutputWriter:     &bytes.Buffer{},
		CacheDir:         "project/.archscan/cache/validation-reports",
	}
}

func TestValidateUseCase_Execute_Success(t *testing.T) {
	f := newValidateFixture()
	uc := f.build(t)

	outcome, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "project", f.collector.root)
	assert.Len(t, f.service.got, 2)
	assert.True(t, outcome.Result.Valid)
	assert.Equal(t, []string{"project/.archscan/cache/validation-reports"}, f.store.saved)
	assert.Equal(t, "project/.archscan/cache/validation-reports/architecture-test.json", outcome.ReportPath)
	assert.True(t, f.formatter.called)
	assert.True(t, f.output.called)
	assert.Equal(t, "ok", f.output.buf.String())
	assert.Nil(t, f.loader.progress, "progress is only attached when requested")
}

func TestValidateUseCase_Execute_InvalidResultIsNotAnError(t *testing.T) {
	f := newValidateFixture()
	f.service.valid = false

	outcome, err := f.build(t).Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Result.ExitCode())
}

func TestValidateUseCase_Execute_Progress(t *testing.T) {
	f := newValidateFixture()
	req := validRequest()
	req.ShowProgress = true

	_, err := f.build(t).Execute(context.Background(), req)
	require.NoError(t, err)
	assert.NotNil(t, f.loader.progress)
}

func TestValidateUseCase_Execute_NoCacheDir(t *testing.T) {
	f := newValidateFixture()
	req := validRequest()
	req.CacheDir = ""

	outcome, err := f.build(t).Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, f.store.saved)
	assert.Empty(t, outcome.ReportPath)
}

func TestValidateUseCase_Execute_SaveFailureIsLogged(t *testing.T) {
	f := newValidateFixture()
	f.store.saveErr = domain.NewSchemaError("bad report", nil)

	outcome, err := f.build(t).Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, outcome.ReportPath)
	assert.True(t, f.output.called)
}

func TestValidateUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(f *validateFixture, req *domain.ValidationRequest)
		wantCode string
	}{
		{
			name:     "missing root",
			mutate:   func(_ *validateFixture, req *domain.ValidationRequest) { req.Root = "" },
			wantCode: domain.ErrCodeInvalidInput,
		},
		{
			name: "missing output",
			mutate: func(_ *validateFixture, req *domain.ValidationRequest) {
				req.OutputWriter = nil
			},
			wantCode: domain.ErrCodeInvalidInput,
		},
		{
			name: "collector failure keeps its code",
			mutate: func(f *validateFixture, _ *domain.ValidationRequest) {
				f.collector.err = domain.NewFileNotFoundError("project", nil)
			},
			wantCode: domain.ErrCodeFileNotFound,
		},
		{
			name: "loader failure",
			mutate: func(f *validateFixture, _ *domain.ValidationRequest) {
				f.loader.err = context.Canceled
			},
			wantCode: domain.ErrCodeAnalysisError,
		},
		{
			name: "service failure",
			mutate: func(f *validateFixture, _ *domain.ValidationRequest) {
				f.service.err = domain.NewConfigError("unknown architecture type", nil)
			},
			wantCode: domain.ErrCodeConfigError,
		},
		{
			name: "output failure",
			mutate: func(f *validateFixture, _ *domain.ValidationRequest) {
				f.output.err = domain.NewOutputError("disk full", errors.New("ENOSPC"))
			},
			wantCode: domain.ErrCodeOutputError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newValidateFixture()
			req := validRequest()
			tt.mutate(f, &req)

			_, err := f.build(t).Execute(context.Background(), req)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, domain.ErrorCode(err))
		})
	}
}

func TestValidateUseCaseBuilder_MissingDependencies(t *testing.T) {
	_, err := NewValidateUseCaseBuilder().WithCollector(&mockCollector{}).Build()
	assert.Error(t, err)
}
