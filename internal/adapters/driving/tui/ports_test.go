package tui

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pacer/internal/core/domain"
	"github.com/custodia-labs/pacer/internal/core/ports/driven"
	"github.com/custodia-labs/pacer/internal/core/ports/driving"
)

// MockAdvanceController implements driving.AdvanceController for testing.
type MockAdvanceController struct {
	mu          sync.Mutex
	ConfirmFunc func(cadence domain.Cadence) error
	confirmed   []domain.Cadence
	cadence     domain.Cadence
	snapshot    domain.AdvanceSnapshot
}

func (m *MockAdvanceController) Attach(driven.Viewer) (func(), error) {
	return func() {}, nil
}

func (m *MockAdvanceController) Confirm(cadence domain.Cadence) error {
	m.mu.Lock()
	m.confirmed = append(m.confirmed, cadence)
	fn := m.ConfirmFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(cadence)
	}
	return nil
}

func (m *MockAdvanceController) PresentationChanged(domain.PresentationState) {}

func (m *MockAdvanceController) Cadence() domain.Cadence {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cadence == 0 {
		return domain.DefaultCadence
	}
	return m.cadence
}

func (m *MockAdvanceController) Snapshot() domain.AdvanceSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot
}

func (m *MockAdvanceController) Close() error { return nil }

func (m *MockAdvanceController) Confirmed() []domain.Cadence {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Cadence(nil), m.confirmed...)
}

// MockDocumentService implements driving.DocumentService for testing.
type MockDocumentService struct {
	OpenFunc   func(ctx context.Context, path string) (*domain.Document, error)
	FollowFunc func(ctx context.Context, path string) (<-chan driving.DocumentUpdate, error)
}

func (m *MockDocumentService) Open(ctx context.Context, path string) (*domain.Document, error) {
	if m.OpenFunc != nil {
		return m.OpenFunc(ctx, path)
	}
	return pagedDocument(3), nil
}

func (m *MockDocumentService) Follow(ctx context.Context, path string) (<-chan driving.DocumentUpdate, error) {
	if m.FollowFunc != nil {
		return m.FollowFunc(ctx, path)
	}
	return nil, nil
}

// MockReadyWaiter implements driving.ReadyWaiter for testing.
type MockReadyWaiter struct {
	WaitReadyFunc func(ctx context.Context, probe driving.ReadyProbe) error
	calls         int
}

func (m *MockReadyWaiter) WaitReady(ctx context.Context, probe driving.ReadyProbe) error {
	m.calls++
	if m.WaitReadyFunc != nil {
		return m.WaitReadyFunc(ctx, probe)
	}
	return nil
}

func TestNewPorts(t *testing.T) {
	advance := &MockAdvanceController{}
	documents := &MockDocumentService{}
	collector := &mockCollector{}

	ports := NewPorts(advance, collector, documents)

	require.NotNil(t, ports)
	assert.Equal(t, advance, ports.Advance)
	assert.Equal(t, collector, ports.Collector)
	assert.Equal(t, documents, ports.Documents)
	assert.Nil(t, ports.Readiness)
	assert.NoError(t, ports.Validate())
}

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ports   *Ports
		wantErr error
	}{
		{
			name:    "nil ports",
			ports:   nil,
			wantErr: ErrInvalidPorts,
		},
		{
			name:    "missing advance controller",
			ports:   &Ports{Collector: &mockCollector{}, Documents: &MockDocumentService{}},
			wantErr: ErrMissingAdvanceController,
		},
		{
			name:    "missing collector",
			ports:   &Ports{Advance: &MockAdvanceController{}, Documents: &MockDocumentService{}},
			wantErr: ErrMissingCadenceCollector,
		},
		{
			name:    "missing document service",
			ports:   &Ports{Advance: &MockAdvanceController{}, Collector: &mockCollector{}},
			wantErr: ErrMissingDocumentService,
		},
		{
			name: "readiness is optional",
			ports: &Ports{
				Advance:   &MockAdvanceController{},
				Collector: &mockCollector{},
				Documents: &MockDocumentService{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// mockCollector implements driving.CadenceCollector with the real
// validation rules, recording what it was opened with.
type mockCollector struct {
	opened []domain.Cadence
}

func (m *mockCollector) Open(current domain.Cadence) driving.CadenceDraft {
	m.opened = append(m.opened, current)
	return &mockDraft{input: current.String(), open: true}
}

type mockDraft struct {
	input     string
	message   string
	open      bool
	cancelled bool
	value     domain.Cadence
}

func (d *mockDraft) Input() string { return d.input }

func (d *mockDraft) Submit(input string) (domain.Cadence, error) {
	if !d.open {
		return 0, domain.ErrDraftClosed
	}
	c, err := domain.ParseCadence(input)
	if err != nil {
		d.message = "Please enter a valid number between 0.1 and 60."
		return 0, err
	}
	d.message = ""
	d.open = false
	d.value = c
	return c, nil
}

func (d *mockDraft) Cancel() {
	d.open = false
	d.cancelled = true
}

func (d *mockDraft) Open() bool      { return d.open }
func (d *mockDraft) Message() string { return d.message }

func (d *mockDraft) Result() (domain.Cadence, error) {
	switch {
	case d.open:
		return 0, domain.ErrNotReady
	case d.cancelled:
		return 0, domain.ErrCancelled
	default:
		return d.value, nil
	}
}
