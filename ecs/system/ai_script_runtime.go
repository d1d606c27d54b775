package system

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/emberworks/pathofember/ecs"
	"github.com/emberworks/pathofember/ecs/component"
	"github.com/emberworks/pathofember/prefabs"
)

type aiScriptRuntime struct {
	scriptPath  string
	compiled    *tengo.Compiled
	stateData   *tengo.Map
	initial     component.StateID
	initialized bool
	pending     component.StateID
}

const aiLifecycleDispatchScript = `
if __phase == "enter" {
	onEnter(__engine, __state, __current_state)
} else if __phase == "update" {
	update(__engine, __state, __current_state)
} else if __phase == "exit" {
	onExit(__engine, __state, __current_state)
}
`

// updateFromScript runs one update phase of an enemy's scripted state
// machine, applying at most one state transition per tick.
func (s *AISystem) updateFromScript(ctx *aiContext) {
	if s == nil || ctx == nil || ctx.enemy == nil {
		return
	}

	rt, err := s.getScriptRuntime(ctx.entity, ctx.enemy.Script)
	if err != nil {
		log.Printf("ai: entity=%v load scripted FSM error: %v", ctx.entity, err)
		return
	}

	if ctx.enemy.State == "" {
		ctx.enemy.State = rt.initial
	}

	engine := buildAIScriptEngine(ctx, rt)
	if !rt.initialized {
		if err := rt.runPhase("enter", ctx.enemy.State, engine); err != nil {
			log.Printf("ai: entity=%v script onEnter error: %v", ctx.entity, err)
			return
		}
		rt.initialized = true
	}

	if err := rt.runPhase("update", ctx.enemy.State, engine); err != nil {
		log.Printf("ai: entity=%v script update error: %v", ctx.entity, err)
		return
	}

	if rt.pending == "" || rt.pending == ctx.enemy.State {
		rt.pending = ""
		return
	}

	prev := ctx.enemy.State
	if err := rt.runPhase("exit", prev, engine); err != nil {
		log.Printf("ai: entity=%v script onExit error: %v", ctx.entity, err)
		return
	}

	ctx.enemy.State = rt.pending
	rt.pending = ""

	if err := rt.runPhase("enter", ctx.enemy.State, engine); err != nil {
		log.Printf("ai: entity=%v script onEnter error: %v", ctx.entity, err)
	}
}

func (s *AISystem) getScriptRuntime(ent ecs.Entity, scriptPath string) (*aiScriptRuntime, error) {
	if s == nil || strings.TrimSpace(scriptPath) == "" {
		return nil, fmt.Errorf("no brain script set")
	}
	if s.scriptCache == nil {
		s.scriptCache = map[ecs.Entity]*aiScriptRuntime{}
	}

	if rt, ok := s.scriptCache[ent]; ok && rt != nil && rt.scriptPath == scriptPath {
		return rt, nil
	}

	scriptBytes, err := prefabs.LoadScript(scriptPath)
	if err != nil {
		return nil, err
	}

	src := string(scriptBytes) + "\n" + aiLifecycleDispatchScript
	script := tengo.NewScript([]byte(src))
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	_ = script.Add("__current_state", "")

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}

	rt := &aiScriptRuntime{
		scriptPath: scriptPath,
		compiled:   compiled,
		stateData:  &tengo.Map{Value: map[string]tengo.Object{}},
		initial:    component.StateID("idle"),
	}

	// Resolve optional initial state from script global `initial_state`.
	noop := &tengo.ImmutableMap{Value: map[string]tengo.Object{}}
	if err := rt.runPhase("noop", rt.initial, noop); err != nil {
		return nil, err
	}
	if compiled.IsDefined("initial_state") {
		name := strings.TrimSpace(compiled.Get("initial_state").String())
		if name != "" {
			rt.initial = component.StateID(name)
		}
	}

	s.scriptCache[ent] = rt
	return rt, nil
}

func (rt *aiScriptRuntime) runPhase(phase string, current component.StateID, engine *tengo.ImmutableMap) error {
	if rt == nil || rt.compiled == nil {
		return fmt.Errorf("nil script runtime")
	}
	if engine == nil {
		engine = &tengo.ImmutableMap{Value: map[string]tengo.Object{}}
	}
	if err := rt.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := rt.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := rt.compiled.Set("__state", rt.stateData); err != nil {
		return err
	}
	if err := rt.compiled.Set("__current_state", string(current)); err != nil {
		return err
	}
	return rt.compiled.Run()
}

// buildAIScriptEngine exposes the enemy's tuning and a small action surface
// to its brain script.
func buildAIScriptEngine(ctx *aiContext, rt *aiScriptRuntime) *tengo.ImmutableMap {
	values := map[string]tengo.Object{
		"move_speed":   &tengo.Float{Value: ctx.enemy.MoveSpeed},
		"aggro_range":  &tengo.Float{Value: ctx.enemy.AggroRange},
		"attack_range": &tengo.Float{Value: ctx.enemy.AttackRange},
	}

	values["transition"] = &tengo.UserFunction{Name: "transition", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if rt == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		name := strings.TrimSpace(objectAsString(args[0]))
		if name == "" {
			return tengo.FalseValue, nil
		}
		rt.pending = component.StateID(name)
		return tengo.TrueValue, nil
	}}

	values["player_dist"] = &tengo.UserFunction{Name: "player_dist", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: ctx.playerDist()}, nil
	}}

	values["move_toward_player"] = &tengo.UserFunction{Name: "move_toward_player", Value: func(args ...tengo.Object) (tengo.Object, error) {
		speed := ctx.enemy.MoveSpeed
		if len(args) > 0 {
			if v, ok := tengo.ToFloat64(args[0]); ok {
				speed = v
			}
		}
		ctx.moveTowardPlayer(speed)
		return tengo.TrueValue, nil
	}}

	values["attack"] = &tengo.UserFunction{Name: "attack", Value: func(args ...tengo.Object) (tengo.Object, error) {
		ctx.beginAttack()
		return tengo.TrueValue, nil
	}}

	values["attack_done"] = &tengo.UserFunction{Name: "attack_done", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx.attackDone() {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
