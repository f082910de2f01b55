package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-bridge/internal/bridge"
)

// fixedGenerator replays numbers in order, cycling when exhausted.
type fixedGenerator struct {
	numbers []int
	next    int
}

func (g *fixedGenerator) Generate() int {
	n := g.numbers[g.next%len(g.numbers)]
	g.next++
	return n
}

// newTestController builds a controller over the UDU bridge (1, 0, 1).
func newTestController(input string) (*Controller, *bytes.Buffer) {
	maker := bridge.NewMaker(&fixedGenerator{numbers: []int{1, 0, 1}})
	out := &bytes.Buffer{}
	return NewController(maker, strings.NewReader(input), out, nil), out
}

func TestControllerWinFirstTry(t *testing.T) {
	c, out := newTestController("3\nU\nD\nU\n")

	res, err := c.Run()
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !res.Won || res.Attempts != 1 || res.Layout != "UDU" {
		t.Errorf("result = %+v", res)
	}

	text := out.String()
	for _, want := range []string{
		msgGameStart,
		"[ O |   | O ]\n[   | O |   ]",
		"Game result: Success",
		"Total attempts: 1",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, errPrefix) {
		t.Errorf("unexpected error output:\n%s", text)
	}
}

func TestControllerRetryThenWin(t *testing.T) {
	c, out := newTestController("3\nD\nR\nU\nD\nU\n")

	res, err := c.Run()
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !res.Won || res.Attempts != 2 {
		t.Errorf("result = %+v, want won in 2 attempts", res)
	}
	if !strings.Contains(out.String(), "[   ]\n[ X ]") {
		t.Errorf("expected failed first move in output:\n%s", out.String())
	}
}

func TestControllerQuitAfterLoss(t *testing.T) {
	c, out := newTestController("3\nU\nU\nQ\n")

	res, err := c.Run()
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if res.Won {
		t.Error("expected a loss")
	}
	text := out.String()
	if !strings.Contains(text, "Game result: Failure") {
		t.Errorf("missing failure summary:\n%s", text)
	}
	if !strings.Contains(text, msgFinalResult+"\n[ O | X ]\n[   |   ]") {
		t.Errorf("final map should show the lost attempt:\n%s", text)
	}
}

func TestControllerRepromptsOnBadInput(t *testing.T) {
	c, out := newTestController("abc\n25\n3\nx\nU\nD\nD\nZ\nR\nU\nD\nU\n")

	res, err := c.Run()
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !res.Won || res.Attempts != 2 {
		t.Errorf("result = %+v", res)
	}

	text := out.String()
	for _, want := range []string{
		errPrefix + errNotNumber,
		errPrefix + errInvalidSize,
		errPrefix + errInvalidMove,
		errPrefix + errInvalidCommand,
		"Total attempts: 2",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestControllerPresetSize(t *testing.T) {
	c, out := newTestController("U\nD\nU\n")
	c.Size = 3

	if _, err := c.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if strings.Contains(out.String(), msgEnterSize) {
		t.Error("preset size should skip the length prompt")
	}
}

func TestControllerInvalidPresetSize(t *testing.T) {
	c, _ := newTestController("")
	c.Size = 99

	_, err := c.Run()
	if !errors.Is(err, bridge.ErrInvalidBridgeSize) {
		t.Errorf("error = %v, want ErrInvalidBridgeSize", err)
	}
}

func TestControllerPresetSizeBadGenerator(t *testing.T) {
	maker := bridge.NewMaker(&fixedGenerator{numbers: []int{7}})
	c := NewController(maker, strings.NewReader(""), &bytes.Buffer{}, nil)
	c.Size = 3

	done := make(chan error, 1)
	go func() {
		_, err := c.Run()
		done <- err
	}()

	select {
	case err := <-done:
		if !errors.Is(err, bridge.ErrInvalidBridgeNumber) {
			t.Errorf("error = %v, want ErrInvalidBridgeNumber", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return for a preset size with a broken generator")
	}
}

func TestControllerEndOfInput(t *testing.T) {
	c, _ := newTestController("3\nU\n")

	_, err := c.Run()
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("error = %v, want io.ErrUnexpectedEOF", err)
	}
	if c.Game() == nil || c.Game().Position() != 1 {
		t.Error("expected the game to keep the move made before input ended")
	}
}
