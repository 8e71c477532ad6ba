package usecase_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/treb-genesis/internal/domain"
	"github.com/trebuchet-org/treb-genesis/internal/usecase"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockSourcePatcher is a mock implementation of SourcePatcher
type MockSourcePatcher struct {
	mock.Mock
}

func (m *MockSourcePatcher) Apply(ctx context.Context, instruction domain.Instruction) error {
	args := m.Called(ctx, instruction)
	return args.Error(0)
}

// MockBuildTrigger is a mock implementation of BuildTrigger
type MockBuildTrigger struct {
	mock.Mock
}

func (m *MockBuildTrigger) Build(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBuildTrigger) GenerateGenesis(ctx context.Context, chainID uint64, output string) error {
	args := m.Called(ctx, chainID, output)
	return args.Error(0)
}

// MockValidatorSetEncoder is a mock implementation of ValidatorSetEncoder
type MockValidatorSetEncoder struct {
	mock.Mock
}

func (m *MockValidatorSetEncoder) EncodeValidatorSet(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// MockValidatorSource is a mock implementation of ValidatorSource
type MockValidatorSource struct {
	mock.Mock
}

func (m *MockValidatorSource) ReadValidators(ctx context.Context, path string) ([]domain.ValidatorRecord, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ValidatorRecord), args.Error(1)
}

// MockValidatorSetCodec is a mock implementation of ValidatorSetCodec
type MockValidatorSetCodec struct {
	mock.Mock
}

func (m *MockValidatorSetCodec) Encode(records []domain.ValidatorRecord) (*domain.ValidatorSetEncoding, error) {
	args := m.Called(records)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValidatorSetEncoding), args.Error(1)
}

// MockTemplateRenderer is a mock implementation of TemplateRenderer
type MockTemplateRenderer struct {
	mock.Mock
}

func (m *MockTemplateRenderer) Render(ctx context.Context, templatePath string, format domain.OutputFormat, data map[string]any) (string, error) {
	args := m.Called(ctx, templatePath, format, data)
	return args.String(0), args.Error(1)
}

// MockFileWriter is a mock implementation of FileWriter
type MockFileWriter struct {
	mock.Mock
}

func (m *MockFileWriter) WriteFile(ctx context.Context, path string, content string) error {
	args := m.Called(ctx, path, content)
	return args.Error(0)
}

func (m *MockFileWriter) FileExists(ctx context.Context, path string) (bool, error) {
	args := m.Called(ctx, path)
	return args.Bool(0), args.Error(1)
}

func (m *MockFileWriter) EnsureDirectory(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *MockFileWriter) ListFiles(ctx context.Context, dir string, ext string) ([]string, error) {
	args := m.Called(ctx, dir, ext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockErrorAnnotator is a mock implementation of ErrorAnnotator
type MockErrorAnnotator struct {
	mock.Mock
}

func (m *MockErrorAnnotator) AnnotateFile(ctx context.Context, path string) ([]domain.ErrorSignature, bool, error) {
	args := m.Called(ctx, path)
	var sigs []domain.ErrorSignature
	if args.Get(0) != nil {
		sigs = args.Get(0).([]domain.ErrorSignature)
	}
	return sigs, args.Bool(1), args.Error(2)
}

// MockBackupStore is a mock implementation of BackupStore
type MockBackupStore struct {
	mock.Mock
}

func (m *MockBackupStore) Snapshot(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *MockBackupStore) RecoverAll(ctx context.Context, dirs []string) ([]string, error) {
	args := m.Called(ctx, dirs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockProgressSink records progress events
type MockProgressSink struct {
	events []usecase.ProgressEvent
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string)  {}
func (m *MockProgressSink) Error(message string) {}

func (m *MockProgressSink) stages() []string {
	var stages []string
	for _, e := range m.events {
		if len(stages) == 0 || stages[len(stages)-1] != e.Stage {
			stages = append(stages, e.Stage)
		}
	}
	return stages
}
