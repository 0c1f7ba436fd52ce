package obj

// Visitor has one method per object kind. Adding a kind adds a method here,
// so every visitor must handle it before the build succeeds.
type Visitor[V any] interface {
	VisitPlayer(*Player) V
	VisitPlatform(*Platform) V
	VisitWoodBlock(*WoodBlock) V
	VisitFireball(*Fireball) V
	VisitBridge(*Bridge) V
}

func Accept[V any](o Object, v Visitor[V]) V {
	switch o := o.(type) {
	case *Player:
		return v.VisitPlayer(o)
	case *Platform:
		return v.VisitPlatform(o)
	case *WoodBlock:
		return v.VisitWoodBlock(o)
	case *Fireball:
		return v.VisitFireball(o)
	case *Bridge:
		return v.VisitBridge(o)
	}
	var zero V
	return zero
}
