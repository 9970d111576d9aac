package scene

import (
	"io"
	"math"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/seaboard/battleship/internal/model"
	"github.com/seaboard/battleship/internal/rocket"
)

func newScene() (*Scene, *model.Model, *bool) {
	md := model.New()
	open := false
	s := New(md, func() bool { return open }, rocket.New(), log.New(io.Discard))
	return s, md, &open
}

func TestGameLayerSetAndAdd(t *testing.T) {
	s, _, _ := newScene()
	s.SetRotate(0, 45, GameSet)
	s.SetRotate(0, 5, GameAdd)
	if got := s.Rotation(0, LayerGame); got != 50 {
		t.Fatalf("expected 50, got %v", got)
	}
	if got := s.Rotation(0, LayerUser); got != 0 {
		t.Fatalf("user layer touched: %v", got)
	}
}

func TestUserModeFollowsMenu(t *testing.T) {
	s, _, open := newScene()
	s.SetTranslate(1, 3, UserAdd)
	*open = true
	s.SetTranslate(1, 7, UserAdd)

	if got := s.Translation(1, LayerUser); got != 3 {
		t.Fatalf("expected user translate 3, got %v", got)
	}
	if got := s.Translation(1, LayerMenu); got != 7 {
		t.Fatalf("expected menu translate 7, got %v", got)
	}
	_, trans := s.Camera()
	if trans[1] != 7 {
		t.Fatalf("camera should use the menu layer while open, got %v", trans[1])
	}
	*open = false
	_, trans = s.Camera()
	if trans[1] != 3 {
		t.Fatalf("camera should use the user layer when closed, got %v", trans[1])
	}
}

func TestInvalidAxisIgnored(t *testing.T) {
	s, _, _ := newScene()
	s.SetRotate(3, 10, GameSet)
	s.SetTranslate(-1, 10, UserSet)
	rot, trans := s.Camera()
	for i := range rot {
		if rot[i] != 0 || trans[i] != 0 {
			t.Fatalf("invalid axis changed the camera: %v %v", rot, trans)
		}
	}
	if s.Rotation(5, LayerGame) != 0 {
		t.Fatal("invalid axis read should be zero")
	}
}

func TestReadyRocketTargetsCursor(t *testing.T) {
	s, md, _ := newScene()
	md.Players[0].SelX, md.Players[0].SelY = 3, 7
	s.ReadyRocket()

	path := s.Rocket().Path()
	if len(path) != 3 {
		t.Fatalf("expected 3 path points, got %d", len(path))
	}
	end := path[2]
	if end[0] != BoardGap+3.5 || end[1] != 7.5 {
		t.Fatalf("expected end over cell (3,7), got %v", end)
	}
	if path[1][2] != SideArc {
		t.Fatalf("side path should arc up, got %v", path[1])
	}
	if s.Rocket().Stopped() {
		t.Fatal("ready rocket should be reset at the start")
	}
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestProjectorCentresBoards(t *testing.T) {
	s, md, _ := newScene()
	w, h := s.Size()
	p := s.Projector(10)
	x, y := p.Project(rocket.Vec{worldCenterX, boardCenter, 0})
	if !near(x, float64(w)/2) || !near(y, float64(h)/2) {
		t.Fatalf("expected centre at (%d,%d), got (%v,%v)", w/2, h/2, x, y)
	}
	x, y = p.Project(rocket.Vec{0, 0, 0})
	if !near(x, float64(w)/2-worldCenterX*10) || !near(y, float64(h)/2-boardCenter*10) {
		t.Fatalf("unexpected board corner (%v,%v)", x, y)
	}

	// Player two's turn with the table turned around looks the same.
	md.Curr = 1
	s.SetRotate(1, 180, GameSet)
	x2, y2 := s.Projector(10).Project(rocket.Vec{0, 0, 0})
	if !near(x, x2) || !near(y, y2) {
		t.Fatalf("turned table should match: (%v,%v) vs (%v,%v)", x, y, x2, y2)
	}
}

func TestProjectorYawSwapsSides(t *testing.T) {
	s, _, _ := newScene()
	s.SetRotate(1, 180, GameSet)
	p := s.Projector(10)
	own, _ := p.Project(rocket.Vec{OwnBoardX + boardCenter, boardCenter, 0})
	opp, _ := p.Project(rocket.Vec{OpponentBoardX + boardCenter, boardCenter, 0})
	if own <= opp {
		t.Fatalf("half turn should put the own board on the right: %v vs %v", own, opp)
	}
}

func TestProjectorTiltLiftsHeight(t *testing.T) {
	s, _, _ := newScene()
	s.SetRotate(0, 30, GameSet)
	p := s.Projector(10)
	_, ground := p.Project(rocket.Vec{5, 5, 0})
	_, air := p.Project(rocket.Vec{5, 5, 4})
	if air >= ground {
		t.Fatalf("height should draw higher on screen: %v vs %v", air, ground)
	}
	_, far := p.Project(rocket.Vec{5, 9, 0})
	if d := far - ground; d <= 0 || d >= 40 {
		t.Fatalf("tilt should foreshorten rows, got %v", d)
	}
}

func TestProjectorPlane(t *testing.T) {
	s, _, _ := newScene()
	s.SetRotate(2, 30, GameSet)
	s.SetTranslate(2, 5, GameSet)
	p := s.Projector(16)
	a, b, c, d, tx, ty := p.Plane(OpponentBoardX, 0)
	u, v := 3.0, 7.0
	wantX, wantY := p.Project(rocket.Vec{OpponentBoardX + u, v, 0})
	if gx, gy := a*u+b*v+tx, c*u+d*v+ty; !near(gx, wantX) || !near(gy, wantY) {
		t.Fatalf("plane map gives (%v,%v), projection (%v,%v)", gx, gy, wantX, wantY)
	}
}
