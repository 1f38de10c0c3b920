package cli

import (
	"fmt"
	"io"
	"time"
)

// Spinner animates msg on w until the returned stop function is called.
// stop marks the line as succeeded or failed. When w is not a terminal, only
// the final line is written.
func Spinner(w io.Writer, msg string) func(ok bool) {
	frames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	done := make(chan struct{})
	finished := make(chan struct{})
	animate := IsTerminal(w)
	go func() {
		defer close(finished)
		if !animate {
			<-done
			return
		}
		i := 0
		for {
			select {
			case <-done:
				return
			default:
				fmt.Fprintf(w, "\r%s %s", frames[i%len(frames)], msg)
				i++
				time.Sleep(90 * time.Millisecond)
			}
		}
	}()
	return func(ok bool) {
		close(done)
		<-finished
		prefix := ""
		if animate {
			prefix = "\r\033[2K"
		}
		color, icon := ColorGreen, IconSuccess
		if !ok {
			color, icon = ColorRed, IconError
		}
		fmt.Fprintf(w, "%s%s%s%s %s\n", prefix, color, icon, ColorReset, msg)
	}
}
