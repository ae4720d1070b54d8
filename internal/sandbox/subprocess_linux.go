//go:build linux

package sandbox

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"sync/atomic"
	"syscall"
	"time"

	apperrors "offlinejudge/pkg/errors"
	"offlinejudge/pkg/utils/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Subprocess is a single outstanding re-exec'd child, grounded on
// engine_linux.go's Run: the parent never forks directly (unsafe once the
// runtime has more than one thread), it execs the judge-init helper and
// lets that process perform the pre-exec setup before replacing itself.
type Subprocess struct {
	cap      Capability
	cmd      *exec.Cmd
	stderr   bytes.Buffer
	start    time.Time
	timedOut atomic.Bool
	done     chan struct{}
	cancel   context.CancelFunc
	runID    string
}

// RunID is a unique identifier for this subprocess invocation, suitable for
// correlating its log lines or naming a scratch work directory when the
// caller did not supply one of its own.
func (s *Subprocess) RunID() string { return s.runID }

// Spawn claims the process capability and starts the judge-init helper with
// req marshaled to its stdin. The caller must call Wait to release
// resources and the capability.
func Spawn(ctx context.Context, req ChildRequest) (*Subprocess, error) {
	cap, err := Acquire()
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(req)
	if err != nil {
		cap.Release()
		return nil, apperrors.Wrapf(err, apperrors.ErrPipeSetup, "encode child request")
	}

	runCtx, cancel := context.WithCancel(ctx)
	cmd := exec.CommandContext(runCtx, HelperPath)
	cmd.Stdin = bytes.NewReader(payload)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid:   true,
		Pdeathsig: syscall.SIGKILL,
	}

	sp := &Subprocess{cap: cap, cmd: cmd, start: time.Now(), done: make(chan struct{}), cancel: cancel, runID: uuid.NewString()}
	cmd.Stderr = &sp.stderr

	if err := cmd.Start(); err != nil {
		cancel()
		cap.Release()
		return nil, apperrors.Wrapf(err, apperrors.ErrProcessSpawn, "start judge-init")
	}

	go sp.watchWallClock(req.Limits.WallTimeMs)

	return sp, nil
}

func (s *Subprocess) watchWallClock(wallMs int64) {
	var timer <-chan time.Time
	if wallMs > 0 {
		timer = time.After(time.Duration(wallMs) * time.Millisecond)
	}
	select {
	case <-timer:
		s.timedOut.Store(true)
		s.killProcessGroup()
	case <-s.done:
	}
}

func (s *Subprocess) killProcessGroup() {
	if s.cmd.Process == nil {
		return
	}
	_ = syscall.Kill(-s.cmd.Process.Pid, syscall.SIGKILL)
}

// Pid returns the judge-init helper's process id.
func (s *Subprocess) Pid() int {
	if s.cmd.Process == nil {
		return -1
	}
	return s.cmd.Process.Pid
}

// Wait blocks until the child terminates, classifies its outcome, and
// releases the subprocess capability.
func (s *Subprocess) Wait() (Result, error) {
	defer s.cap.Release()
	defer s.cancel()

	waitErr := s.cmd.Wait()
	close(s.done)

	wallTime := time.Since(s.start)
	state := s.cmd.ProcessState
	if state == nil && waitErr != nil {
		return Result{}, apperrors.Wrapf(waitErr, apperrors.ErrProcessWait, "wait judge-init")
	}

	outcome := classifyState(state)
	if s.timedOut.Load() {
		outcome = Outcome{Kind: KindSentinel, Sentinel: CodeTimeout, Code: int(CodeTimeout)}
	}

	usage := Usage{}
	if state != nil {
		if ru, ok := state.SysUsage().(*syscall.Rusage); ok {
			usage.CPUTime = time.Duration(ru.Utime.Sec)*time.Second +
				time.Duration(ru.Utime.Usec)*time.Microsecond +
				time.Duration(ru.Stime.Sec)*time.Second +
				time.Duration(ru.Stime.Usec)*time.Microsecond
			usage.MaxRSSKB = ru.Maxrss
		}
	}

	if s.stderr.Len() > 0 {
		logger.Warn(context.Background(), "judge-init stderr", zap.String("run_id", s.runID), zap.String("stderr", s.stderr.String()))
	}

	return Result{Outcome: outcome, Usage: usage, WallTime: wallTime}, nil
}

// classifyState maps a terminated process's wait status to an Outcome,
// matching launcher.cpp's ParseStatus (WIFEXITED/WIFSIGNALED dispatch).
func classifyState(state *os.ProcessState) Outcome {
	if state == nil {
		return Outcome{Kind: KindExited, Code: -1}
	}
	if ws, ok := state.Sys().(syscall.WaitStatus); ok {
		if ws.Signaled() {
			return ClassifySignal(int(ws.Signal()))
		}
		if ws.Exited() {
			return ClassifyExit(ws.ExitStatus())
		}
	}
	return ClassifyExit(state.ExitCode())
}
