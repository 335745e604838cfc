package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/corsair/ecs/component"
	"github.com/milk9111/corsair/prefabs"
)

// patternScript wraps a compiled tengo boss pattern. The script reads the
// globals __x, __y, __volley, and __rand, and must leave a top-level `shots`
// array of [angle_deg, speed] pairs.
type patternScript struct {
	path     string
	compiled *tengo.Compiled
	volley   int
}

func (s *BossSystem) scriptVolley(name string, x, y float64) ([]component.ShotRequest, error) {
	path := strings.TrimPrefix(name, "script:")
	if path == name {
		return nil, fmt.Errorf("unknown pattern")
	}

	ps, err := s.loadScript(path)
	if err != nil {
		return nil, err
	}

	if err := ps.compiled.Set("__x", x); err != nil {
		return nil, err
	}
	if err := ps.compiled.Set("__y", y); err != nil {
		return nil, err
	}
	if err := ps.compiled.Set("__volley", ps.volley); err != nil {
		return nil, err
	}
	if err := ps.compiled.Set("__rand", s.rng.Float64()); err != nil {
		return nil, err
	}
	if err := ps.compiled.Run(); err != nil {
		return nil, err
	}
	ps.volley++

	raw, ok := ps.compiled.Get("shots").Value().([]any)
	if !ok {
		return nil, fmt.Errorf("script did not produce a shots array")
	}

	shots := make([]component.ShotRequest, 0, len(raw))
	for _, entry := range raw {
		pair, ok := entry.([]any)
		if !ok || len(pair) < 2 {
			continue
		}
		angle, ok1 := scriptFloat(pair[0])
		speed, ok2 := scriptFloat(pair[1])
		if !ok1 || !ok2 {
			continue
		}
		shots = append(shots, bossShot(x, y, angle, speed))
	}
	return shots, nil
}

func (s *BossSystem) loadScript(path string) (*patternScript, error) {
	if s.scripts == nil {
		s.scripts = map[string]*patternScript{}
	}
	if ps, ok := s.scripts[path]; ok {
		return ps, nil
	}

	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript(src)
	_ = script.Add("__x", 0.0)
	_ = script.Add("__y", 0.0)
	_ = script.Add("__volley", 0)
	_ = script.Add("__rand", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}

	ps := &patternScript{path: path, compiled: compiled}
	s.scripts[path] = ps
	return ps, nil
}

func scriptFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
