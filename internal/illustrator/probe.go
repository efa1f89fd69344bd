package illustrator

import (
	"fmt"
	"os/exec"
	"strings"
)

// ProcessProbe reports engine liveness by scanning the process table for
// one exact executable path. Whole-line equality keeps lookalikes out:
// a beta install or a second copy under a different path never matches.
type ProcessProbe struct {
	ExecPath string

	// list overrides the ps invocation in tests.
	list func() ([]byte, error)
}

func NewProcessProbe(execPath string) *ProcessProbe {
	return &ProcessProbe{ExecPath: execPath}
}

func (p *ProcessProbe) Alive() (bool, error) {
	out, err := p.processTable()
	if err != nil {
		return false, fmt.Errorf("listing processes: %w", err)
	}
	for _, line := range strings.Split(string(out), "\n") {
		if strings.TrimSpace(line) == p.ExecPath {
			return true, nil
		}
	}
	return false, nil
}

func (p *ProcessProbe) processTable() ([]byte, error) {
	if p.list != nil {
		return p.list()
	}
	return exec.Command("ps", "-axo", "comm=").Output()
}
