package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mkarpovich/liftlog/internal/models"
	"github.com/sirupsen/logrus"
)

var (
	ErrNoActiveSession      = errors.New("no active workout session")
	ErrSessionAlreadyActive = errors.New("a workout session is already active")
	ErrExerciseIndexRange   = errors.New("exercise index out of range")
)

type SessionWriter interface {
	Create(session *models.WorkoutSession) error
	UpdateSnapshot(sessionID string, snapshot models.TemplateSnapshot) error
	Complete(sessionID string, completedAt time.Time, durationSeconds int, rating *int, notes string) error
}

type SetLogWriter interface {
	Create(set *models.SetLog) error
}

type TemplateReader interface {
	GetWithExercises(templateID string) (models.WorkoutTemplate, error)
}

type ExerciseReader interface {
	FindByID(exerciseID string) (models.Exercise, error)
}

type SetHistoryReader interface {
	LastWorkingSets(userID string, exerciseID string, limit int) ([]models.SetLog, error)
	HistoricalMax(userID string, exerciseID string) (maxWeight float64, maxReps int, found bool, err error)
}

// ActiveExercise is one slot in the in-memory session, tracking logged
// sets alongside the frozen targets and the previous session's sets.
type ActiveExercise struct {
	ExerciseID   string
	ExerciseName string
	TargetSets   int
	TargetReps   string
	RestSeconds  int
	Sets         []models.SetLog
	LastTime     []models.SetLog
}

const (
	PRKindWeight = "weight"
	PRKindReps   = "reps"
)

type PersonalRecord struct {
	ExerciseID   string
	ExerciseName string
	Kind         string
	Weight       float64
	Reps         int
}

// ActiveSession is the mutable in-memory state of one in-progress
// workout. The rest timer is an absolute deadline, not a countdown, so
// it survives process suspension without drift.
type ActiveSession struct {
	SessionID       string
	UserID          string
	Name            string
	TemplateID      *string
	StartedAt       time.Time
	Exercises       []ActiveExercise
	CurrentExercise int
	RestEndsAt      *time.Time
	PRs             []PersonalRecord
	// LatestPRExercise marks the exercise whose set most recently hit a
	// PR, for celebratory display. -1 when nothing is pending.
	LatestPRExercise int
}

type SetOptions struct {
	RPE       *float64
	IsWarmup  bool
	IsDropset bool
	IsFailure bool
}

type WorkoutSummary struct {
	SessionID          string
	Name               string
	DurationSeconds    int
	TotalVolume        float64
	ExercisesCompleted int
	SetsCompleted      int
	PRs                []PersonalRecord
	Rating             *int
}

// SessionEngine drives one active workout session per user. Callers
// hold the handle; there is no ambient singleton. The host runs
// single-threaded, so no internal locking is modeled.
type SessionEngine struct {
	sessions  SessionWriter
	sets      SetLogWriter
	templates TemplateReader
	exercises ExerciseReader
	history   SetHistoryReader
	log       *logrus.Logger
	now       func() time.Time

	active    *ActiveSession
	observers []func()
}

func NewSessionEngine(
	sessions SessionWriter,
	sets SetLogWriter,
	templates TemplateReader,
	exercises ExerciseReader,
	history SetHistoryReader,
	log *logrus.Logger,
) *SessionEngine {
	if log == nil {
		log = logrus.New()
	}
	return &SessionEngine{
		sessions:  sessions,
		sets:      sets,
		templates: templates,
		exercises: exercises,
		history:   history,
		log:       log,
		now:       time.Now,
	}
}

// Subscribe registers an observer invoked after every state mutation.
func (engine *SessionEngine) Subscribe(observer func()) {
	engine.observers = append(engine.observers, observer)
}

func (engine *SessionEngine) notify() {
	for _, observer := range engine.observers {
		observer()
	}
}

// Active returns the in-memory session, or nil when none is running.
func (engine *SessionEngine) Active() *ActiveSession {
	return engine.active
}

// StartWorkout begins a session from a saved template, freezing the
// template into the session's snapshot and preloading each exercise's
// most recent working sets.
func (engine *SessionEngine) StartWorkout(templateID string, userID string) (*ActiveSession, error) {
	if engine.active != nil {
		return nil, ErrSessionAlreadyActive
	}

	template, err := engine.templates.GetWithExercises(templateID)
	if err != nil {
		return nil, fmt.Errorf("load template: %w", err)
	}

	startedAt := engine.now()
	snapshot := models.TemplateSnapshot{
		SchemaVersion: models.SnapshotSchemaVersion,
		Name:          template.Name,
		Exercises:     make([]models.SnapshotExercise, 0, len(template.Exercises)),
	}
	activeExercises := make([]ActiveExercise, 0, len(template.Exercises))
	for _, templateExercise := range template.Exercises {
		name := engine.exerciseDisplayName(templateExercise.ExerciseID)
		snapshot.Exercises = append(snapshot.Exercises, models.SnapshotExercise{
			ExerciseID:    templateExercise.ExerciseID,
			ExerciseName:  name,
			OrderIndex:    templateExercise.OrderIndex,
			TargetSets:    templateExercise.TargetSets,
			TargetReps:    templateExercise.TargetReps,
			RestSeconds:   templateExercise.RestSeconds,
			SupersetGroup: templateExercise.SupersetGroup,
			Tempo:         templateExercise.Tempo,
			Notes:         templateExercise.Notes,
		})
		activeExercises = append(activeExercises, ActiveExercise{
			ExerciseID:   templateExercise.ExerciseID,
			ExerciseName: name,
			TargetSets:   templateExercise.TargetSets,
			TargetReps:   templateExercise.TargetReps,
			RestSeconds:  templateExercise.RestSeconds,
			LastTime:     engine.loadLastTime(userID, templateExercise.ExerciseID),
		})
	}

	session := models.WorkoutSession{
		ID:                uuid.NewString(),
		UserID:            userID,
		WorkoutTemplateID: &template.ID,
		TemplateSnapshot:  snapshot,
		StartedAt:         startedAt,
	}
	if err := engine.sessions.Create(&session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	engine.active = &ActiveSession{
		SessionID:        session.ID,
		UserID:           userID,
		Name:             template.Name,
		TemplateID:       &template.ID,
		StartedAt:        startedAt,
		Exercises:        activeExercises,
		LatestPRExercise: -1,
	}
	engine.notify()
	return engine.active, nil
}

// StartQuickWorkout begins an ad hoc session with no template;
// exercises are appended as the workout unfolds.
func (engine *SessionEngine) StartQuickWorkout(name string, userID string) (*ActiveSession, error) {
	if engine.active != nil {
		return nil, ErrSessionAlreadyActive
	}

	startedAt := engine.now()
	session := models.WorkoutSession{
		ID:     uuid.NewString(),
		UserID: userID,
		TemplateSnapshot: models.TemplateSnapshot{
			SchemaVersion: models.SnapshotSchemaVersion,
			Name:          name,
			Exercises:     []models.SnapshotExercise{},
		},
		StartedAt: startedAt,
	}
	if err := engine.sessions.Create(&session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	engine.active = &ActiveSession{
		SessionID:        session.ID,
		UserID:           userID,
		Name:             name,
		StartedAt:        startedAt,
		Exercises:        []ActiveExercise{},
		LatestPRExercise: -1,
	}
	engine.notify()
	return engine.active, nil
}

// AddExerciseToSession appends an exercise to the running session and
// records a synthetic snapshot entry so history lookups can resolve the
// display name even though the exercise was never part of a template.
func (engine *SessionEngine) AddExerciseToSession(exerciseID string, targetSets int, targetReps string, restSeconds int) error {
	if engine.active == nil {
		return ErrNoActiveSession
	}

	exercise, err := engine.exercises.FindByID(exerciseID)
	if err != nil {
		return fmt.Errorf("resolve exercise: %w", err)
	}

	active := engine.active
	snapshot := models.SnapshotExercise{
		ExerciseID:   exercise.ID,
		ExerciseName: exercise.Name,
		OrderIndex:   len(active.Exercises),
		TargetSets:   targetSets,
		TargetReps:   targetReps,
		RestSeconds:  restSeconds,
	}

	updated := engine.currentSnapshot()
	updated.Exercises = append(updated.Exercises, snapshot)
	if err := engine.sessions.UpdateSnapshot(active.SessionID, updated); err != nil {
		return fmt.Errorf("update session snapshot: %w", err)
	}

	active.Exercises = append(active.Exercises, ActiveExercise{
		ExerciseID:   exercise.ID,
		ExerciseName: exercise.Name,
		TargetSets:   targetSets,
		TargetReps:   targetReps,
		RestSeconds:  restSeconds,
		LastTime:     engine.loadLastTime(active.UserID, exercise.ID),
	})
	engine.notify()
	return nil
}

func (engine *SessionEngine) currentSnapshot() models.TemplateSnapshot {
	active := engine.active
	snapshot := models.TemplateSnapshot{
		SchemaVersion: models.SnapshotSchemaVersion,
		Name:          active.Name,
		Exercises:     make([]models.SnapshotExercise, 0, len(active.Exercises)),
	}
	for index, exercise := range active.Exercises {
		snapshot.Exercises = append(snapshot.Exercises, models.SnapshotExercise{
			ExerciseID:   exercise.ExerciseID,
			ExerciseName: exercise.ExerciseName,
			OrderIndex:   index,
			TargetSets:   exercise.TargetSets,
			TargetReps:   exercise.TargetReps,
			RestSeconds:  exercise.RestSeconds,
		})
	}
	return snapshot
}

func (engine *SessionEngine) exerciseDisplayName(exerciseID string) string {
	exercise, err := engine.exercises.FindByID(exerciseID)
	if err != nil {
		engine.log.WithError(err).WithField("exercise_id", exerciseID).Warn("exercise name lookup failed")
		return ""
	}
	return exercise.Name
}

func (engine *SessionEngine) loadLastTime(userID string, exerciseID string) []models.SetLog {
	lastTime, err := engine.history.LastWorkingSets(userID, exerciseID, 5)
	if err != nil {
		engine.log.WithError(err).WithField("exercise_id", exerciseID).Warn("last-time lookup failed")
		return []models.SetLog{}
	}
	return lastTime
}

func countNonSkipped(sets []models.SetLog) int {
	count := 0
	for _, set := range sets {
		if !set.Skipped {
			count++
		}
	}
	return count
}

// LogSetComplete persists the next set for an exercise, runs PR
// detection for non-warmup weighted sets, and starts the rest timer.
// The set is durably stored before the timer starts; a failed PR lookup
// never blocks the write.
func (engine *SessionEngine) LogSetComplete(exerciseIndex int, reps int, weight float64, weightUnit string, options SetOptions) (models.SetLog, []PersonalRecord, error) {
	if engine.active == nil {
		return models.SetLog{}, nil, ErrNoActiveSession
	}
	active := engine.active
	if exerciseIndex < 0 || exerciseIndex >= len(active.Exercises) {
		return models.SetLog{}, nil, ErrExerciseIndexRange
	}
	exercise := &active.Exercises[exerciseIndex]

	if weightUnit == "" {
		weightUnit = models.WeightUnitKg
	}
	set := models.SetLog{
		ID:               uuid.NewString(),
		WorkoutSessionID: active.SessionID,
		ExerciseID:       exercise.ExerciseID,
		SetNumber:        countNonSkipped(exercise.Sets) + 1,
		Reps:             reps,
		Weight:           weight,
		WeightUnit:       weightUnit,
		RPE:              options.RPE,
		IsWarmup:         options.IsWarmup,
		IsDropset:        options.IsDropset,
		IsFailure:        options.IsFailure,
	}
	// Records are detected against history as it stood before this set;
	// once the row is inserted it would be part of its own maximum.
	newRecords := engine.detectRecords(exercise, set)

	if err := engine.sets.Create(&set); err != nil {
		return models.SetLog{}, nil, fmt.Errorf("persist set: %w", err)
	}
	exercise.Sets = append(exercise.Sets, set)
	if len(newRecords) > 0 {
		active.PRs = append(active.PRs, newRecords...)
		active.LatestPRExercise = exerciseIndex
	} else if active.LatestPRExercise >= 0 && active.LatestPRExercise != exerciseIndex {
		active.LatestPRExercise = -1
	}

	if exercise.RestSeconds > 0 {
		restEndsAt := engine.now().Add(time.Duration(exercise.RestSeconds) * time.Second)
		active.RestEndsAt = &restEndsAt
	}

	engine.notify()
	return set, newRecords, nil
}

// detectRecords compares the set against the best historical weight and
// reps. Must run before the set is persisted. Lookup failures are
// logged and treated as no PR.
func (engine *SessionEngine) detectRecords(exercise *ActiveExercise, set models.SetLog) []PersonalRecord {
	if set.IsWarmup || set.Weight <= 0 {
		return nil
	}

	maxWeight, maxReps, found, err := engine.history.HistoricalMax(engine.active.UserID, exercise.ExerciseID)
	if err != nil {
		engine.log.WithError(err).WithFields(logrus.Fields{
			"exercise_id": exercise.ExerciseID,
			"set_id":      set.ID,
		}).Warn("PR history lookup failed, set recorded without PR check")
		return nil
	}
	if !found {
		return nil
	}

	check := CheckForPR(set.Weight, set.Reps, maxWeight, maxReps)
	records := make([]PersonalRecord, 0, 2)
	if check.WeightPR {
		records = append(records, PersonalRecord{
			ExerciseID:   exercise.ExerciseID,
			ExerciseName: exercise.ExerciseName,
			Kind:         PRKindWeight,
			Weight:       set.Weight,
			Reps:         set.Reps,
		})
	}
	if check.RepsPR {
		records = append(records, PersonalRecord{
			ExerciseID:   exercise.ExerciseID,
			ExerciseName: exercise.ExerciseName,
			Kind:         PRKindReps,
			Weight:       set.Weight,
			Reps:         set.Reps,
		})
	}
	return records
}

// SkipSet records a zero-value placeholder occupying the next
// set-number slot. The rest timer and PR logic are untouched, and the
// slot does not advance the numbering of working sets.
func (engine *SessionEngine) SkipSet(exerciseIndex int) (models.SetLog, error) {
	if engine.active == nil {
		return models.SetLog{}, ErrNoActiveSession
	}
	active := engine.active
	if exerciseIndex < 0 || exerciseIndex >= len(active.Exercises) {
		return models.SetLog{}, ErrExerciseIndexRange
	}
	exercise := &active.Exercises[exerciseIndex]

	set := models.SetLog{
		ID:               uuid.NewString(),
		WorkoutSessionID: active.SessionID,
		ExerciseID:       exercise.ExerciseID,
		SetNumber:        countNonSkipped(exercise.Sets) + 1,
		WeightUnit:       models.WeightUnitKg,
		Skipped:          true,
	}
	if err := engine.sets.Create(&set); err != nil {
		return models.SetLog{}, fmt.Errorf("persist skipped set: %w", err)
	}
	exercise.Sets = append(exercise.Sets, set)
	engine.notify()
	return set, nil
}

// NextExercise advances the pointer, clamped to the last exercise, and
// clears any running rest timer.
func (engine *SessionEngine) NextExercise() error {
	return engine.moveExercise(1)
}

// PreviousExercise moves the pointer back, clamped to zero, and clears
// any running rest timer.
func (engine *SessionEngine) PreviousExercise() error {
	return engine.moveExercise(-1)
}

func (engine *SessionEngine) moveExercise(delta int) error {
	if engine.active == nil {
		return ErrNoActiveSession
	}
	active := engine.active
	if len(active.Exercises) == 0 {
		return nil
	}

	next := active.CurrentExercise + delta
	if next < 0 {
		next = 0
	}
	if next > len(active.Exercises)-1 {
		next = len(active.Exercises) - 1
	}
	if next != active.CurrentExercise {
		active.CurrentExercise = next
		active.RestEndsAt = nil
		engine.notify()
	}
	return nil
}

// RestRemaining reports time left on the rest timer by comparing the
// absolute deadline to the wall clock. Zero when no timer runs.
func (engine *SessionEngine) RestRemaining() time.Duration {
	if engine.active == nil || engine.active.RestEndsAt == nil {
		return 0
	}
	remaining := engine.active.RestEndsAt.Sub(engine.now())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Elapsed reports how long the session has been running. Derived
// display state, never persisted per tick.
func (engine *SessionEngine) Elapsed() time.Duration {
	if engine.active == nil {
		return 0
	}
	return engine.now().Sub(engine.active.StartedAt)
}

// FinishWorkout persists completion and returns the summary. A workout
// with zero logged sets still yields a valid summary.
func (engine *SessionEngine) FinishWorkout(rating *int, notes string) (WorkoutSummary, error) {
	if engine.active == nil {
		return WorkoutSummary{}, ErrNoActiveSession
	}
	active := engine.active

	completedAt := engine.now()
	durationSeconds := int(completedAt.Sub(active.StartedAt) / time.Second)
	if err := engine.sessions.Complete(active.SessionID, completedAt, durationSeconds, rating, notes); err != nil {
		return WorkoutSummary{}, fmt.Errorf("complete session: %w", err)
	}

	var totalVolume float64
	exercisesCompleted := 0
	setsCompleted := 0
	for _, exercise := range active.Exercises {
		totalVolume += CalculateVolume(exercise.Sets)
		if countNonSkipped(exercise.Sets) > 0 {
			exercisesCompleted++
		}
		for _, set := range exercise.Sets {
			if set.IsWorkingSet() {
				setsCompleted++
			}
		}
	}

	summary := WorkoutSummary{
		SessionID:          active.SessionID,
		Name:               active.Name,
		DurationSeconds:    durationSeconds,
		TotalVolume:        totalVolume,
		ExercisesCompleted: exercisesCompleted,
		SetsCompleted:      setsCompleted,
		PRs:                active.PRs,
		Rating:             rating,
	}

	engine.active = nil
	engine.notify()
	return summary, nil
}

// CancelWorkout drops the in-memory state. The session row stays in the
// store as an incomplete historical record; nothing persisted is
// discarded.
func (engine *SessionEngine) CancelWorkout() error {
	if engine.active == nil {
		return ErrNoActiveSession
	}
	engine.active = nil
	engine.notify()
	return nil
}
