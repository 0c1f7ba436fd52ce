package world

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/elements/config"
	"github.com/milk9111/elements/levels"
	"github.com/milk9111/elements/obj"
)

type contactFixture struct {
	classifier *Classifier
	player     *obj.Player
	other      *obj.Player

	sensor      *cp.Shape
	playerBody  *cp.Shape
	platform    *cp.Shape
	platform2   *cp.Shape
	wood        *cp.Shape
	ownFire     *cp.Shape
	otherFire   *cp.Shape
	otherSensor *cp.Shape
	stray       *cp.Shape
}

func newContactFixture() *contactFixture {
	consts := config.Default()
	owners := map[*cp.Shape]obj.Object{}
	shape := func(o obj.Object, userData any) *cp.Shape {
		s := cp.NewBox(cp.NewBody(1, 1), 1, 1, 0)
		s.UserData = userData
		if o != nil {
			owners[s] = o
		}
		return s
	}

	f := &contactFixture{
		player: obj.NewPlayer(consts.Player, levels.PlayerData{}),
		other:  obj.NewPlayer(consts.Player, levels.PlayerData{X: 5}),
	}
	platform := obj.NewPlatform(consts.Platform, levels.PlatformData{Width: 1, Height: 1}, "p")
	wood := obj.NewWoodBlock(consts.Wood, levels.PlatformData{Width: 1, Height: 1}, "w")

	f.sensor = shape(f.player, obj.GroundSensorName)
	f.sensor.SetSensor(true)
	f.playerBody = shape(f.player, nil)
	f.platform = shape(platform, nil)
	f.platform2 = shape(platform, nil)
	f.wood = shape(wood, nil)
	f.ownFire = shape(obj.NewFireball(consts.Fireball, f.player), nil)
	f.otherFire = shape(obj.NewFireball(consts.Fireball, f.other), nil)
	f.otherSensor = shape(f.other, obj.GroundSensorName)
	f.otherSensor.SetSensor(true)
	f.stray = shape(nil, nil)

	f.classifier = NewClassifier(func(s *cp.Shape) (obj.Object, bool) {
		o, ok := owners[s]
		return o, ok
	})
	return f
}

func TestClassifierGroundContacts(t *testing.T) {
	f := newContactFixture()
	c := f.classifier

	steps := []struct {
		name  string
		begin bool
		a, b  *cp.Shape
		want  int
	}{
		{"sensor_first", true, f.sensor, f.platform, 1},
		{"sensor_second", true, f.wood, f.sensor, 2},
		{"same_shape_twice", true, f.sensor, f.platform, 2},
		{"body_is_not_sensor", true, f.playerBody, f.platform2, 2},
		{"fireball_is_not_ground", true, f.sensor, f.otherFire, 2},
		{"unknown_shape", true, f.sensor, f.stray, 2},
		{"other_player_sensor", true, f.otherSensor, f.platform2, 2},
		{"end_one", false, f.platform, f.sensor, 2},
		{"end_wood", false, f.sensor, f.wood, 1},
		{"end_unknown", false, f.sensor, f.stray, 1},
		{"end_last", false, f.sensor, f.platform, 0},
		{"end_extra", false, f.sensor, f.platform, 0},
	}

	for _, s := range steps {
		if s.begin {
			c.Begin(s.a, s.b)
		} else {
			c.End(s.a, s.b)
		}
		if got := f.player.GroundContacts(); got != s.want {
			t.Fatalf("%s: contacts = %d, want %d", s.name, got, s.want)
		}
		if f.player.IsGrounded() != (s.want > 0) {
			t.Fatalf("%s: grounded = %v with %d contacts", s.name, f.player.IsGrounded(), s.want)
		}
	}
	if f.other.GroundContacts() != 1 {
		t.Fatalf("other player contacts = %d, want 1", f.other.GroundContacts())
	}
}

func TestClassifierPreSolve(t *testing.T) {
	f := newContactFixture()

	tests := []struct {
		name string
		a, b *cp.Shape
		want bool
	}{
		{"own_fireball", f.ownFire, f.playerBody, false},
		{"own_fireball_reversed", f.playerBody, f.ownFire, false},
		{"own_fireball_sensor", f.sensor, f.ownFire, false},
		{"other_fireball", f.otherFire, f.playerBody, true},
		{"fireball_platform", f.ownFire, f.platform, true},
		{"player_platform", f.playerBody, f.platform, true},
		{"unknown", f.ownFire, f.stray, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 3; i++ {
				if got := f.classifier.PreSolve(tt.a, tt.b); got != tt.want {
					t.Fatalf("call %d: PreSolve = %v, want %v", i, got, tt.want)
				}
			}
			if f.player.GroundContacts() != 0 {
				t.Fatalf("PreSolve changed ground contacts")
			}
		})
	}
}

func TestClassifierWithoutResolver(t *testing.T) {
	c := NewClassifier(nil)
	s := cp.NewBox(cp.NewBody(1, 1), 1, 1, 0)
	c.Begin(s, nil)
	c.End(nil, s)
	if !c.PreSolve(s, s) {
		t.Fatalf("unresolved contacts should be solved")
	}
}
