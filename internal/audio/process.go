package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// ProcessBackend plays audio by running an external player (ffplay, mpv or
// any command taking the file as its last argument).
type ProcessBackend struct {
	player string

	mu  sync.Mutex
	cmd *exec.Cmd
}

var _ Backend = (*ProcessBackend)(nil)

// NewProcessBackend returns a backend for the player binary.
func NewProcessBackend(player string) *ProcessBackend {
	return &ProcessBackend{player: strings.TrimSpace(player)}
}

// Args returns the command line used to play path at volume.
func (p *ProcessBackend) Args(path string, volume float64) []string {
	pct := strconv.Itoa(int(math.Round(clamp(volume) * 100)))
	switch strings.TrimSuffix(filepath.Base(p.player), ".exe") {
	case "ffplay":
		return []string{"-nodisp", "-loglevel", "quiet", "-loop", "0", "-volume", pct, path}
	case "mpv":
		return []string{"--no-video", "--really-quiet", "--loop-file=inf", "--volume=" + pct, path}
	default:
		return []string{path}
	}
}

// Start implements Backend.
func (p *ProcessBackend) Start(path string, volume float64) error {
	if p.player == "" {
		return fmt.Errorf("no audio player configured")
	}
	bin, err := exec.LookPath(p.player)
	if err != nil {
		return fmt.Errorf("find audio player: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()
	cmd := exec.Command(bin, p.Args(path, volume)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("run %s: %w", p.player, err)
	}
	p.cmd = cmd
	go func() { _ = cmd.Wait() }()
	return nil
}

// Stop implements Backend.
func (p *ProcessBackend) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.stopLocked()
}

func (p *ProcessBackend) stopLocked() error {
	if p.cmd == nil || p.cmd.Process == nil {
		return nil
	}
	err := p.cmd.Process.Kill()
	p.cmd = nil
	if err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("kill player: %w", err)
	}
	return nil
}
