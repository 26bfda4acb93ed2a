package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"testing"

	kerrors "github.com/cunialino/know-your-trees/pkg/errors"
)

func TestZerologLoggerEmitsFields(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	logger := GetLoggerWithName("tree")
	logger.Info("fit started",
		OperationKey, OperationFit,
		SamplesKey, 3,
		FeaturesKey, 1,
	)

	var record map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("log output is not JSON: %v (%q)", err, buf.String())
	}
	if record[ComponentKey] != "tree" {
		t.Errorf("component = %v, want tree", record[ComponentKey])
	}
	if record[OperationKey] != OperationFit {
		t.Errorf("operation = %v, want %s", record[OperationKey], OperationFit)
	}
	if record[SamplesKey] != float64(3) {
		t.Errorf("samples = %v, want 3", record[SamplesKey])
	}
}

func TestZerologLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	logger := GetLogger().With(ScoringKey, "gini")
	logger.Info("split chosen", SplitFeatureKey, "F1")

	out := buf.String()
	if !strings.Contains(out, `"gini"`) {
		t.Errorf("output missing pre-populated field: %s", out)
	}
	if !strings.Contains(out, `"F1"`) {
		t.Errorf("output missing event field: %s", out)
	}
}

func TestLoggerEnabled(t *testing.T) {
	SetLevel(LevelWarn)
	defer SetLevel(LevelInfo)

	logger := GetLogger()
	if logger.Enabled(context.Background(), LevelDebug) {
		t.Error("debug should be disabled at warn level")
	}
	if !logger.Enabled(context.Background(), LevelError) {
		t.Error("error should be enabled at warn level")
	}
}

func TestTestLoggerCaptures(t *testing.T) {
	logger, _ := NewTestLogger(LevelDebug)
	logger.With(ComponentKey, "tree").Info("leaf built", DepthKey, 0)

	records, err := logger.Records()
	if err != nil {
		t.Fatalf("Records() error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("captured %d records, want 1", len(records))
	}
	if records[0]["message"] != "leaf built" {
		t.Errorf("message = %v, want 'leaf built'", records[0]["message"])
	}
}

func TestTestLoggerLevelFiltering(t *testing.T) {
	logger, buffer := NewTestLogger(LevelInfo)
	logger.Debug("should be dropped")
	if buffer.Len() != 0 {
		t.Errorf("debug record was not filtered: %s", buffer.String())
	}
}

func TestErrFmtHandlerAddsStacktrace(t *testing.T) {
	var buf bytes.Buffer
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil))
	logger := slog.New(handler)

	err := kerrors.WithStack(kerrors.New("score not comparable"))
	logger.Error("fit failed", ErrAttr(err))

	var record map[string]interface{}
	if jsonErr := json.Unmarshal(buf.Bytes(), &record); jsonErr != nil {
		t.Fatalf("log output is not JSON: %v", jsonErr)
	}
	if _, ok := record[StacktraceAttrKey]; !ok {
		t.Errorf("record has no %s attribute: %s", StacktraceAttrKey, buf.String())
	}
}
