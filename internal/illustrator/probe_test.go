package illustrator

import (
	"errors"
	"testing"
)

const illustratorExec = "/Applications/Adobe Illustrator 2025/Adobe Illustrator.app/Contents/MacOS/Adobe Illustrator"

func tableProbe(execPath string, table string) *ProcessProbe {
	p := NewProcessProbe(execPath)
	p.list = func() ([]byte, error) { return []byte(table), nil }
	return p
}

func TestProbeMatchesExactPath(t *testing.T) {
	table := "/usr/libexec/trustd\n" +
		illustratorExec + "\n" +
		"/System/Library/CoreServices/Dock.app/Contents/MacOS/Dock\n"

	alive, err := tableProbe(illustratorExec, table).Alive()
	if err != nil {
		t.Fatalf("Alive: %v", err)
	}
	if !alive {
		t.Fatal("exact executable path not detected")
	}
}

func TestProbeIgnoresLookalikes(t *testing.T) {
	table := illustratorExec + " Helper\n" +
		"/Applications/Adobe Illustrator 2024/Adobe Illustrator.app/Contents/MacOS/Adobe Illustrator\n"

	alive, err := tableProbe(illustratorExec, table).Alive()
	if err != nil {
		t.Fatalf("Alive: %v", err)
	}
	if alive {
		t.Fatal("matched a different executable path")
	}
}

func TestProbeTrimsPadding(t *testing.T) {
	alive, err := tableProbe(illustratorExec, "  "+illustratorExec+"  \n").Alive()
	if err != nil {
		t.Fatalf("Alive: %v", err)
	}
	if !alive {
		t.Fatal("padded process-table line not matched")
	}
}

func TestProbeEmptyTable(t *testing.T) {
	alive, err := tableProbe(illustratorExec, "").Alive()
	if err != nil {
		t.Fatalf("Alive: %v", err)
	}
	if alive {
		t.Fatal("empty process table reported alive")
	}
}

func TestProbePropagatesListErrors(t *testing.T) {
	boom := errors.New("ps exploded")
	p := NewProcessProbe(illustratorExec)
	p.list = func() ([]byte, error) { return nil, boom }

	if _, err := p.Alive(); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped ps error", err)
	}
}
