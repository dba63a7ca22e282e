package term

import (
	"bufio"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// StartInput starts the input loop and returns a channel of events. It
// is closed when done is closed. Besides keypresses it also emits
// KeyResize on SIGWINCH and KeyMouseScrollUp/Down when SGR mouse
// reporting is enabled by the caller (printed "\x1b[?1000h\x1b[?1006h").
func StartInput(done <-chan struct{}) <-chan Event {
	ch := make(chan Event)
	go inputLoop(ch, done)
	go resizeLoop(ch, done)
	return ch
}

func resizeLoop(ch chan<- Event, done <-chan struct{}) {
	resizeCh := make(chan os.Signal, 1)
	signal.Notify(resizeCh, syscall.SIGWINCH)
	defer signal.Stop(resizeCh)
	for {
		select {
		case <-done:
			return
		case <-resizeCh:
			cols, rows, err := Size(os.Stdout)
			if err != nil {
				continue
			}
			select {
			case ch <- Event{Key: KeyResize, Rows: rows, Cols: cols}:
			case <-done:
				return
			}
		}
	}
}

func inputLoop(ch chan<- Event, done <-chan struct{}) {
	defer close(ch)
	reader := bufio.NewReader(os.Stdin)

	// A single dedicated goroutine reads raw bytes from stdin; no other
	// goroutine touches the reader, so there's no data race on it.
	rawCh := make(chan byte, 128)
	go func() {
		for {
			b, err := reader.ReadByte()
			if err != nil {
				close(rawCh)
				return
			}
			rawCh <- b
		}
	}()

	for {
		select {
		case <-done:
			return
		case b, ok := <-rawCh:
			if !ok {
				return
			}
			if b == 0x1b {
				processEsc(rawCh, ch)
			} else {
				processChar(b, ch)
			}
		}
	}
}

func processEsc(rawCh <-chan byte, ch chan<- Event) {
	select {
	case next, ok := <-rawCh:
		if !ok {
			ch <- Event{Key: KeyEsc}
			return
		}
		if next == '[' {
			parseCSI(rawCh, ch)
		} else if next == 'O' {
			parseSS3(rawCh, ch)
		} else {
			ch <- Event{Key: KeyChar, Rune: rune(next), Mod: ModAlt}
		}
	case <-time.After(10 * time.Millisecond):
		ch <- Event{Key: KeyEsc}
	}
}

func processChar(b byte, ch chan<- Event) {
	if b <= 0x1f {
		switch b {
		case 0x0d:
			ch <- Event{Key: KeyEnter}
		case 0x09:
			ch <- Event{Key: KeyTab}
		case 0x08:
			ch <- Event{Key: KeyBackspace}
		case 0x03:
			ch <- Event{Key: KeyChar, Rune: 'c', Mod: ModCtrl}
		default:
			ch <- Event{Key: KeyChar, Rune: rune(b + 0x60), Mod: ModCtrl}
		}
	} else if b == 0x7f {
		ch <- Event{Key: KeyBackspace}
	} else {
		ch <- Event{Key: KeyChar, Rune: rune(b)}
	}
}

func readByteTimeout(rawCh <-chan byte, timeout time.Duration) (byte, bool) {
	select {
	case b, ok := <-rawCh:
		return b, ok
	case <-time.After(timeout):
		return 0, false
	}
}

const csiTimeout = 50 * time.Millisecond

func parseCSI(rawCh <-chan byte, ch chan<- Event) {
	var params []byte
	for {
		b, ok := readByteTimeout(rawCh, csiTimeout)
		if !ok {
			return
		}
		if b == '<' && len(params) == 0 {
			parseSGRMouse(rawCh, ch)
			return
		}
		if b >= 0x40 && b <= 0x7E {
			dispatchCSI(params, b, ch)
			return
		}
		params = append(params, b)
	}
}

// parseSGRMouse handles "ESC [ < Cb ; Cx ; Cy (M|m)" mouse reports. Only
// wheel events (Cb 64/65, optionally with modifier bits) are surfaced;
// button clicks are outside this toolkit's scope.
func parseSGRMouse(rawCh <-chan byte, ch chan<- Event) {
	var raw []byte
	for {
		b, ok := readByteTimeout(rawCh, csiTimeout)
		if !ok {
			return
		}
		if b == 'M' || b == 'm' {
			break
		}
		raw = append(raw, b)
	}
	cb, _, _ := splitSGRParams(raw)
	switch cb & 0x43 {
	case 0x40:
		ch <- Event{Key: KeyMouseScrollUp}
	case 0x41:
		ch <- Event{Key: KeyMouseScrollDown}
	}
}

func splitSGRParams(raw []byte) (cb, cx, cy int) {
	nums := [3]int{}
	idx := 0
	cur := 0
	for _, b := range raw {
		if b == ';' {
			if idx < 3 {
				nums[idx] = cur
			}
			idx++
			cur = 0
			continue
		}
		if b >= '0' && b <= '9' {
			cur = cur*10 + int(b-'0')
		}
	}
	if idx < 3 {
		nums[idx] = cur
	}
	return nums[0], nums[1], nums[2]
}

func dispatchCSI(params []byte, final byte, ch chan<- Event) {
	p := string(params)

	switch final {
	case 'A':
		ch <- Event{Key: KeyArrowUp}
	case 'B':
		ch <- Event{Key: KeyArrowDown}
	case 'C':
		ch <- Event{Key: KeyArrowRight}
	case 'D':
		ch <- Event{Key: KeyArrowLeft}
	case 'H':
		ch <- Event{Key: KeyHome}
	case 'F':
		ch <- Event{Key: KeyEnd}
	case '~':
		key := p
		if i := indexOf(p, ';'); i >= 0 {
			key = p[:i]
		}
		switch key {
		case "1":
			ch <- Event{Key: KeyHome}
		case "2":
			ch <- Event{Key: KeyInsert}
		case "3":
			ch <- Event{Key: KeyDelete}
		case "4":
			ch <- Event{Key: KeyEnd}
		case "5":
			ch <- Event{Key: KeyPgUp}
		case "6":
			ch <- Event{Key: KeyPgDown}
		case "15":
			ch <- Event{Key: KeyF5}
		case "17":
			ch <- Event{Key: KeyF6}
		case "18":
			ch <- Event{Key: KeyF7}
		case "19":
			ch <- Event{Key: KeyF8}
		case "20":
			ch <- Event{Key: KeyF9}
		case "21":
			ch <- Event{Key: KeyF10}
		case "23":
			ch <- Event{Key: KeyF11}
		case "24":
			ch <- Event{Key: KeyF12}
		}
	}
}

func indexOf(s string, sep byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			return i
		}
	}
	return -1
}

func parseSS3(rawCh <-chan byte, ch chan<- Event) {
	b, ok := readByteTimeout(rawCh, csiTimeout)
	if !ok {
		return
	}
	switch b {
	case 'A':
		ch <- Event{Key: KeyArrowUp}
	case 'B':
		ch <- Event{Key: KeyArrowDown}
	case 'C':
		ch <- Event{Key: KeyArrowRight}
	case 'D':
		ch <- Event{Key: KeyArrowLeft}
	case 'P':
		ch <- Event{Key: KeyF1}
	case 'Q':
		ch <- Event{Key: KeyF2}
	case 'R':
		ch <- Event{Key: KeyF3}
	case 'S':
		ch <- Event{Key: KeyF4}
	case 'H':
		ch <- Event{Key: KeyHome}
	case 'F':
		ch <- Event{Key: KeyEnd}
	}
}
