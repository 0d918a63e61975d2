package server

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/litescript/ls-skymap/internal/logging"
	"github.com/litescript/ls-skymap/internal/projection"
	"github.com/litescript/ls-skymap/internal/render"
	"github.com/litescript/ls-skymap/internal/session"
)

func testServer() (*Server, *session.Manager) {
	cfg := session.DefaultConfig()
	cfg.FixedTime = time.Date(2024, 3, 15, 22, 0, 0, 0, time.UTC)
	sess := session.NewManager(cfg)
	return New(DefaultConfig(), sess, logging.Discard()), sess
}

func TestApplyCommands(t *testing.T) {
	s, sess := testServer()
	startHeading := sess.Snapshot().Orientation.HeadingDeg

	s.apply(ControlMsg{Cmd: "rotate", HeadingDeg: 15, PitchDeg: -5})
	snap := sess.Snapshot()
	if math.Abs(snap.Orientation.HeadingDeg-(startHeading+15)) > 1e-9 {
		t.Errorf("heading after rotate = %v", snap.Orientation.HeadingDeg)
	}

	startFOV := snap.FOVDeg
	s.apply(ControlMsg{Cmd: "zoom", Factor: 2})
	if sess.Snapshot().FOVDeg >= startFOV {
		t.Error("zoom command did not narrow the view")
	}

	s.apply(ControlMsg{Cmd: "mode", Mode: "stereographic"})
	if sess.Snapshot().Mode != projection.ModeStereographic {
		t.Error("mode command not applied")
	}
	s.apply(ControlMsg{Cmd: "mode", Mode: "perspective"})
	if sess.Snapshot().Mode != projection.ModePerspective {
		t.Error("mode command did not switch back")
	}

	s.apply(ControlMsg{Cmd: "auto_rotate"})
	if !sess.Snapshot().AutoRotate {
		t.Error("auto_rotate command not applied")
	}

	s.apply(ControlMsg{Cmd: "reset"})
	snap = sess.Snapshot()
	if snap.Orientation.HeadingDeg != startHeading || snap.FOVDeg != startFOV {
		t.Errorf("reset left state at %+v", snap.Orientation)
	}
}

func TestApplyLookAt(t *testing.T) {
	s, sess := testServer()

	// By catalog name: focus follows the star.
	s.apply(ControlMsg{Cmd: "look_at", Name: "Vega"})
	snap := sess.Snapshot()
	if snap.FocusName != "Vega" {
		t.Errorf("FocusName = %q, want Vega", snap.FocusName)
	}
	if math.Abs(snap.Orientation.HeadingDeg-279.23) > 0.5 {
		t.Errorf("heading = %v, want ~279.2", snap.Orientation.HeadingDeg)
	}

	// Unknown names fall back to raw coordinates without focus.
	s.apply(ControlMsg{Cmd: "look_at", Name: "NotAStar", RAdeg: 100, DecDeg: 10})
	snap = sess.Snapshot()
	if snap.FocusName != "" {
		t.Errorf("FocusName = %q, want empty", snap.FocusName)
	}
	if math.Abs(snap.Orientation.HeadingDeg-100) > 1e-9 {
		t.Errorf("heading = %v, want 100", snap.Orientation.HeadingDeg)
	}
}

func TestApplyUnknownCommand(t *testing.T) {
	s, sess := testServer()
	before := sess.Snapshot()
	s.apply(ControlMsg{Cmd: "frobnicate"})
	after := sess.Snapshot()
	if after.Orientation != before.Orientation || after.FOVDeg != before.FOVDeg {
		t.Error("unknown command mutated the session")
	}
}

func TestEncodeFrame(t *testing.T) {
	s, _ := testServer()

	data, err := s.encodeFrame()
	if err != nil {
		t.Fatalf("encodeFrame() error: %v", err)
	}

	var frame render.FrameExport
	if err := json.Unmarshal(data, &frame); err != nil {
		t.Fatalf("frame is not valid JSON: %v", err)
	}
	if frame.Width != s.cfg.Width || frame.Height != s.cfg.Height {
		t.Errorf("frame size = %dx%d, want %dx%d", frame.Width, frame.Height, s.cfg.Width, s.cfg.Height)
	}
	if len(frame.Points) == 0 {
		t.Error("frame has no points")
	}
}

func TestWebSocketRoundTrip(t *testing.T) {
	s, sess := testServer()

	ts := httptest.NewServer(http.HandlerFunc(s.handleWebSocket))
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	defer resp.Body.Close()

	// The server pushes one frame immediately on connect.
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var frame render.FrameExport
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatalf("read initial frame: %v", err)
	}
	if len(frame.Points) == 0 {
		t.Error("initial frame has no points")
	}

	// Control messages flow back into the shared session.
	if err := conn.WriteJSON(ControlMsg{Cmd: "rotate", HeadingDeg: 30}); err != nil {
		t.Fatalf("write control: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	want := frame.Camera.HeadingDeg + 30
	for time.Now().Before(deadline) {
		h := sess.Snapshot().Orientation.HeadingDeg
		if math.Abs(h-math.Mod(want, 360)) < 1e-6 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Errorf("heading = %v, want %v", sess.Snapshot().Orientation.HeadingDeg, want)
}

func TestDropClientIdempotent(t *testing.T) {
	s, _ := testServer()

	ts := httptest.NewServer(http.HandlerFunc(s.handleWebSocket))
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer resp.Body.Close()
	conn.Close()

	// The read loop notices the close and removes the client; further
	// broadcasts must not block or panic on the gone connection.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		s.mu.RLock()
		n := len(s.clients)
		s.mu.RUnlock()
		if n == 0 {
			s.broadcast([]byte("{}"))
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Error("client not dropped after disconnect")
}
