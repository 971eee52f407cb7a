package convertcmd

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-command/dispatcher"

	"github.com/goliatone/go-modeldoc/internal/commands"
	"github.com/goliatone/go-modeldoc/internal/commands/fixtures"
)

func TestRegisterConvertCommandsHandlerOptionsApplied(t *testing.T) {
	var sourceApplied, fileApplied, directoryApplied bool

	_, err := RegisterConvertCommands(nil, &stubModelDocService{}, fixtures.NewMemorySink(), nil, FeatureGates{},
		WithSourceHandlerOptions(func(*commands.Handler[ConvertSourceCommand]) { sourceApplied = true }),
		WithFileHandlerOptions(func(*commands.Handler[ConvertFileCommand]) { fileApplied = true }),
		WithDirectoryHandlerOptions(func(*commands.Handler[ConvertDirectoryCommand]) { directoryApplied = true }),
	)
	if err != nil {
		t.Fatalf("register convert commands: %v", err)
	}
	if !sourceApplied || !fileApplied || !directoryApplied {
		t.Fatalf("expected all handler options applied: source=%v file=%v directory=%v", sourceApplied, fileApplied, directoryApplied)
	}
}

func TestRegisterConvertCommandsRegistersHandlers(t *testing.T) {
	reg := fixtures.NewRecordingRegistry()

	set, err := RegisterConvertCommands(reg, &stubModelDocService{}, fixtures.NewMemorySink(), nil, FeatureGates{})
	if err != nil {
		t.Fatalf("register convert commands: %v", err)
	}
	if len(reg.Handlers) != 3 {
		t.Fatalf("expected three handlers registered, got %d", len(reg.Handlers))
	}
	if reg.Handlers[0] != any(set.Source) || reg.Handlers[1] != any(set.File) || reg.Handlers[2] != any(set.Directory) {
		t.Fatalf("unexpected registration order %#v", reg.Handlers)
	}
}

func TestRegisterConvertCommandsPropagatesRegistryError(t *testing.T) {
	reg := fixtures.NewRecordingRegistry()
	reg.Err = errors.New("registry closed")

	if _, err := RegisterConvertCommands(reg, &stubModelDocService{}, fixtures.NewMemorySink(), nil, FeatureGates{}); !errors.Is(err, reg.Err) {
		t.Fatalf("expected registry error, got %v", err)
	}
}

func TestRegisterConvertCommandsRequiresDependencies(t *testing.T) {
	if _, err := RegisterConvertCommands(nil, nil, fixtures.NewMemorySink(), nil, FeatureGates{}); err == nil {
		t.Fatal("expected error for nil service")
	}
	if _, err := RegisterConvertCommands(nil, &stubModelDocService{}, nil, nil, FeatureGates{}); err == nil {
		t.Fatal("expected error for nil sink")
	}
}

func TestHandlerSetSubscribeDispatchesMessages(t *testing.T) {
	service := &stubModelDocService{}
	sink := fixtures.NewMemorySink()
	set, err := RegisterConvertCommands(nil, service, sink, nil, FeatureGates{})
	if err != nil {
		t.Fatalf("register convert commands: %v", err)
	}

	unsubscribe := set.Subscribe(0)
	t.Cleanup(unsubscribe)

	if err := dispatcher.Dispatch(context.Background(), ConvertFileCommand{Path: "Store.xcdatamodel/contents"}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if len(service.fileCalls) != 1 {
		t.Fatalf("expected dispatched file conversion, got %d", len(service.fileCalls))
	}
	if len(sink.Writes) != 1 {
		t.Fatalf("expected one write, got %d", len(sink.Writes))
	}
}
