package notify

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"expirywatch/pkg/utils"
)

// Notifier emits a system notification. The UI only calls Send after the
// evaluator has decided a notification is due.
type Notifier interface {
	Send(title, body string) error
}

// Desktop sends notifications through the platform notifier command:
// notify-send on Linux, osascript on macOS. When neither is usable it
// falls back to ringing the terminal bell.
type Desktop struct{}

// NewDesktop returns the platform notifier.
func NewDesktop() *Desktop {
	return &Desktop{}
}

// Available reports whether a real notifier command exists. The UI uses
// this to decide whether offering the permission prompt makes sense.
func (d *Desktop) Available() bool {
	switch runtime.GOOS {
	case "darwin":
		_, err := exec.LookPath("osascript")
		return err == nil
	default:
		_, err := exec.LookPath("notify-send")
		return err == nil
	}
}

// Send shows the notification.
func (d *Desktop) Send(title, body string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		script := fmt.Sprintf("display notification %q with title %q", body, title)
		cmd = exec.Command("osascript", "-e", script)
	default:
		cmd = exec.Command("notify-send", title, body)
	}

	if err := cmd.Run(); err != nil {
		utils.Log("Notifier command failed, falling back to bell: %v", err)
		fmt.Fprint(os.Stderr, "\a")
		return err
	}
	utils.Log("Sent notification: %s", title)
	return nil
}
