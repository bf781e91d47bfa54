// internal/app/session.go
package app

import (
	"go-dodge-tejecks/internal/component"
	"go-dodge-tejecks/internal/config"
	"go-dodge-tejecks/internal/defs"
	"go-dodge-tejecks/internal/entity"
	"go-dodge-tejecks/internal/event"
	"go-dodge-tejecks/internal/profile"
	"go-dodge-tejecks/internal/system"
	"go-dodge-tejecks/internal/utils"
)

// Input: намерения игрока на один кадр. Хост держит Fire всегда
// включённым: без патронов оружие само не стреляет.
type Input struct {
	MoveLeft  bool
	MoveRight bool
	Fire      bool
	Pause     bool
}

// Outcome: итог забега.
type Outcome struct {
	State     component.GameState
	Level     string
	Score     int
	MaxCombo  int
	Destroyed int
}

// FrameResult: всё, что хост получает после кадра.
type FrameResult struct {
	Snapshot system.Snapshot
	Sounds   []event.EventType
	Paused   bool
	Outcome  *Outcome // не nil, как только забег завершён
}

// Checkpointer принимает копии прогресса на сохранение. Не должен блокировать.
type Checkpointer interface {
	Enqueue(r profile.Record)
}

// Options: параметры сессии, не относящиеся к уровню.
type Options struct {
	Seed          int64 // 0: от времени
	DisableSpawns bool
}

// Session описывает один забег: выживание или бой с боссом.
type Session struct {
	Level              defs.Level
	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	StatusEffectSystem *system.StatusEffectSystem
	ScoreSystem        *system.ScoreSystem
	MovementSystem     *system.MovementSystem
	SpawnSystem        *system.SpawnSystem
	BossSystem         *system.BossSystem
	ProjectileSystem   *system.ProjectileSystem
	CombatSystem       *system.CombatSystem
	VisualEffectSystem *system.VisualEffectSystem
	RenderSystem       *system.RenderSystem
	Rng                *utils.PRNGService

	profile     *profile.Record
	checkpoints Checkpointer
	fallSpeed   float64
	sounds      []event.EventType
	outcome     *Outcome
}

// NewSession собирает мир и системы для уровня. rec: профиль игрока,
// которым владеет хост; сессия дописывает в него итог забега.
func NewSession(level defs.Level, rec *profile.Record, checkpoints Checkpointer, opts Options) *Session {
	var (
		effects   *component.StatusEffects
		enemyRate float64
		loot      defs.LootTable
		fallSpeed float64
	)
	if level.Boss {
		effects = system.NewStatusEffects(config.BossStartAmmo, config.BossMaxAmmo, config.BossCooldown)
		enemyRate = config.BossSpawnRate
		loot = defs.BossLoot
		fallSpeed = config.BossAmbientSpeed
	} else {
		effects = system.NewStatusEffects(config.SurvivalStartAmmo, config.SurvivalMaxAmmo, config.SurvivalCooldown)
		enemyRate = system.SpawnRate(level.FallSpeed)
		loot = defs.SurvivalLoot
		fallSpeed = level.FallSpeed
	}

	ecs := entity.NewECS(component.NewPlayer(rec.Equipped), effects)
	if level.Boss {
		ecs.Boss = component.NewBoss()
	}

	// косметика берёт случайность из своего генератора, чтобы частицы
	// не меняли исход забега
	fxSeed := opts.Seed
	if fxSeed != 0 {
		fxSeed++
	}
	rng := utils.NewPRNGService(opts.Seed)
	eventDispatcher := event.NewDispatcher()

	s := &Session{
		Level:           level,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		profile:         rec,
		checkpoints:     checkpoints,
		fallSpeed:       fallSpeed,
	}
	s.StatusEffectSystem = system.NewStatusEffectSystem(ecs)
	s.ScoreSystem = system.NewScoreSystem(ecs)
	s.MovementSystem = system.NewMovementSystem(ecs, s.StatusEffectSystem)
	s.SpawnSystem = system.NewSpawnSystem(ecs, rng, enemyRate, loot)
	s.SpawnSystem.Disabled = opts.DisableSpawns
	s.BossSystem = system.NewBossSystem(ecs, rng, eventDispatcher)
	s.ProjectileSystem = system.NewProjectileSystem(ecs, s.StatusEffectSystem, eventDispatcher)
	s.VisualEffectSystem = system.NewVisualEffectSystem(ecs, utils.NewPRNGService(fxSeed))
	s.CombatSystem = system.NewCombatSystem(ecs, s.StatusEffectSystem, s.ScoreSystem, s.VisualEffectSystem, s.BossSystem, eventDispatcher)
	s.RenderSystem = system.NewRenderSystem(ecs)

	eventDispatcher.SubscribeSounds(event.ListenerFunc(func(e event.Event) {
		s.sounds = append(s.sounds, e.Type)
	}))
	return s
}

// Profile: профиль, в который пишет сессия.
func (s *Session) Profile() *profile.Record { return s.profile }

// Outcome: итог, если забег завершён.
func (s *Session) Outcome() (Outcome, bool) {
	if s.outcome == nil {
		return Outcome{}, false
	}
	return *s.outcome, true
}

// Step продвигает забег на один кадр.
func (s *Session) Step(in Input) FrameResult {
	s.sounds = s.sounds[:0]

	if s.outcome != nil {
		return s.result(false)
	}
	// на паузе не двигается ничего, даже счётчик кадров
	if in.Pause {
		return s.result(true)
	}

	run := s.ECS.Run
	run.Frame++

	run.AutoSaveTimer++
	if run.AutoSaveTimer >= config.AutoSaveInterval {
		run.AutoSaveTimer = 0
		s.checkpoint()
	}

	s.StatusEffectSystem.Update()
	s.ScoreSystem.Update()

	s.MovementSystem.MovePlayer(in.MoveLeft, in.MoveRight)
	s.BossSystem.Update()
	if s.BossSystem.ShouldFire() {
		px, py := s.ECS.Player.Center()
		s.BossSystem.Fire(px, py)
	}
	for range s.MovementSystem.Update(s.fallSpeed) {
		s.creditDodge()
	}
	s.SpawnSystem.Update()
	s.ProjectileSystem.Update(in.Fire)
	s.applyCaps()

	res := s.CombatSystem.Update()
	switch {
	case res.BossDefeated:
		s.ScoreSystem.Award(config.BossVictoryBonus)
		s.finish(component.Victory)
	case res.PlayerDied:
		s.finish(component.GameOver)
	}

	s.VisualEffectSystem.Update()
	s.applyCaps()
	return s.result(false)
}

// Quit завершает забег по выходу из паузы: очки засчитываются, рекорд нет.
func (s *Session) Quit() Outcome {
	if s.outcome != nil {
		return *s.outcome
	}
	s.profile.QuitRun(s.Level.Name, s.ECS.Run.Points)
	s.enqueue()
	return s.end(component.Quit)
}

func (s *Session) creditDodge() {
	streak := s.ScoreSystem.Dodge()
	if streak%config.DodgeSoundEvery == 0 {
		s.EventDispatcher.Emit(event.SoundDodge)
	}
	if streak%config.ComboParticleStreak == 0 {
		x, _ := s.ECS.Player.Center()
		s.VisualEffectSystem.Burst(x, s.ECS.Player.Y, config.Green, 10)
	}
}

// В режиме босса списки ограничены; выживанию хватает естественной очистки.
func (s *Session) applyCaps() {
	if !s.Level.Boss {
		return
	}
	ecs := s.ECS
	ecs.Particles = entity.TrimOldest(ecs.Particles, config.MaxParticles)
	ecs.Fires = entity.TrimOldest(ecs.Fires, config.MaxFires)
	ecs.Hazards = entity.TrimOldest(ecs.Hazards, config.MaxHazards)
	ecs.Lasers = entity.TrimOldest(ecs.Lasers, config.MaxLasers)
	ecs.Explosions = entity.TrimOldest(ecs.Explosions, config.MaxExplosions)
}

// checkpoint делает автосохранение посреди забега: лучший результат уровня
// обновляется, общий счёт нет.
func (s *Session) checkpoint() {
	s.profile.UpdateBest(s.Level.Name, s.ECS.Run.Points)
	s.enqueue()
}

func (s *Session) finish(state component.GameState) {
	s.profile.FinishRun(s.Level.Name, s.ECS.Run.Points)
	s.enqueue()
	s.end(state)
}

func (s *Session) end(state component.GameState) Outcome {
	run := s.ECS.Run
	s.ECS.GameState = state
	s.outcome = &Outcome{
		State:     state,
		Level:     s.Level.Name,
		Score:     run.Points,
		MaxCombo:  run.MaxCombo,
		Destroyed: run.Destroyed,
	}
	s.EventDispatcher.Dispatch(event.Event{Type: event.RunEnded, Data: *s.outcome})
	return *s.outcome
}

func (s *Session) enqueue() {
	if s.checkpoints != nil {
		s.checkpoints.Enqueue(s.profile.Clone())
	}
}

func (s *Session) result(paused bool) FrameResult {
	res := FrameResult{
		Snapshot: s.RenderSystem.Snapshot(s.Level.Name, s.profile.TotalPoints),
		Paused:   paused,
		Outcome:  s.outcome,
	}
	if len(s.sounds) > 0 {
		res.Sounds = append([]event.EventType(nil), s.sounds...)
	}
	return res
}
