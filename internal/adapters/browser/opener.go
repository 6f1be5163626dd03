package browser

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"go.uber.org/zap"

	"linkdir/internal/ports"
)

// Opener implements ports.URLOpener by handing the URL to the desktop
type Opener struct {
	goos   string
	getenv func(string) string
	logger *zap.Logger
}

// Ensure Opener implements URLOpener
var _ ports.URLOpener = (*Opener)(nil)

// NewOpener creates a new browser opener
func NewOpener(logger *zap.Logger) *Opener {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Opener{
		goos:   runtime.GOOS,
		getenv: os.Getenv,
		logger: logger,
	}
}

// Open starts the browser and returns without waiting for it to exit
func (o *Opener) Open(url string) error {
	cmd, err := o.Command(url)
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", cmd.Path, err)
	}

	// Reap the child so it does not linger as a zombie
	go func() {
		if err := cmd.Wait(); err != nil {
			o.logger.Debug("browser exited", zap.String("url", url), zap.Error(err))
		}
	}()

	return nil
}

// Command returns the exec.Cmd that opens url.
// $BROWSER wins over the platform default.
func (o *Opener) Command(url string) (*exec.Cmd, error) {
	if browser := strings.TrimSpace(o.getenv("BROWSER")); browser != "" {
		fields := strings.Fields(browser)
		args := append(fields[1:], url)
		return exec.Command(fields[0], args...), nil
	}

	switch o.goos {
	case "darwin":
		return exec.Command("open", url), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", url), nil
	case "windows":
		// cmd.exe would split the URL at & and other metacharacters
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", o.goos)
	}
}
