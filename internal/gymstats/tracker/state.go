// Package tracker holds the per-process view state of the fitness tracker:
// logged workouts and meals, the running calorie totals, the profile and the
// month shown in the calendar. All mutation happens here; the calorie and
// calendar computations it calls into are pure.
package tracker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vfit-app/vfit/internal/gymstats/calendar"
	"github.com/vfit-app/vfit/internal/gymstats/calories"
	"github.com/vfit-app/vfit/internal/gymstats/feed"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Stats struct {
	TotalCalories int `json:"totalCalories"`
	WorkoutCount  int `json:"workoutCount"`
	MealCount     int `json:"mealCount"`
	MealCalories  int `json:"mealCalories"`
	// NetCalories is eaten minus burned.
	NetCalories int `json:"netCalories"`
}

type CalendarView struct {
	ReferenceDate string        `json:"referenceDate"`
	Month         string        `json:"month"`
	Grid          calendar.Grid `json:"grid"`
}

type Option func(*State)

// WithClock overrides time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *State) {
		s.now = now
	}
}

func WithPublisher(publisher feed.Publisher) Option {
	return func(s *State) {
		s.publisher = publisher
	}
}

type State struct {
	mu sync.RWMutex

	workouts       []Workout
	meals          []Meal
	totalCalories  int
	mealCalories   int
	displayedMonth time.Time
	profile        Profile

	schedule  calendar.Schedule
	publisher feed.Publisher
	now       func() time.Time
}

func NewState(schedule calendar.Schedule, opts ...Option) *State {
	s := &State{
		workouts:  make([]Workout, 0),
		meals:     make([]Meal, 0),
		schedule:  schedule,
		publisher: feed.NoopPublisher{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.schedule == nil {
		s.schedule = make(calendar.Schedule)
	}
	s.displayedMonth = s.now()
	return s
}

// AddWorkout validates the form, estimates burned calories and appends the
// entry to the history. The feed publish is best effort: a failure is logged
// and the workout stays recorded.
func (s *State) AddWorkout(ctx context.Context, form WorkoutForm) (Workout, error) {
	in, err := form.parse()
	if err != nil {
		return Workout{}, err
	}

	cals, err := calories.Estimate(in.duration, in.category)
	if err != nil {
		return Workout{}, fmt.Errorf("estimate calories: %w", err)
	}

	now := s.now()
	workout := Workout{
		ID:              uuid.NewString(),
		Name:            in.name,
		DurationMinutes: in.duration,
		Category:        in.category,
		Calories:        cals,
		Timestamp:       now.Format(DisplayTimeLayout),
		CreatedAt:       now,
	}

	s.mu.Lock()
	s.workouts = append(s.workouts, workout)
	s.totalCalories += cals
	s.mu.Unlock()

	if err := s.publisher.PublishWorkout(ctx, feed.WorkoutLogged{
		WorkoutID:       workout.ID,
		Name:            workout.Name,
		Category:        workout.Category.String(),
		DurationMinutes: workout.DurationMinutes,
		Calories:        workout.Calories,
		LoggedAt:        workout.CreatedAt,
	}); err != nil {
		log.Errorf("publish workout [%s] to feed: %s", workout.ID, err)
	}

	return workout, nil
}

// Workouts returns a copy of the history, oldest first.
func (s *State) Workouts() []Workout {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Workout, len(s.workouts))
	copy(out, s.workouts)
	return out
}

func (s *State) AddMeal(form MealForm) (Meal, error) {
	in, err := form.parse()
	if err != nil {
		return Meal{}, err
	}

	now := s.now()
	meal := Meal{
		ID:        uuid.NewString(),
		Name:      in.name,
		Calories:  in.calories,
		Timestamp: now.Format(DisplayTimeLayout),
		CreatedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.meals = append(s.meals, meal)
	s.mealCalories += meal.Calories
	return meal, nil
}

func (s *State) Meals() []Meal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Meal, len(s.meals))
	copy(out, s.meals)
	return out
}

func (s *State) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{
		TotalCalories: s.totalCalories,
		WorkoutCount:  len(s.workouts),
		MealCount:     len(s.meals),
		MealCalories:  s.mealCalories,
		NetCalories:   s.mealCalories - s.totalCalories,
	}
}

func (s *State) Profile() Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// UpdateProfile replaces the whole profile; a rejected form leaves it untouched.
func (s *State) UpdateProfile(form ProfileForm) (Profile, error) {
	profile, err := form.parse()
	if err != nil {
		return Profile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = profile
	return profile, nil
}

// Calendar builds the grid for the currently displayed month.
func (s *State) Calendar() CalendarView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.calendarView()
}

func (s *State) NextMonth() CalendarView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.displayedMonth = calendar.NextMonth(s.displayedMonth)
	return s.calendarView()
}

func (s *State) PrevMonth() CalendarView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.displayedMonth = calendar.PrevMonth(s.displayedMonth)
	return s.calendarView()
}

func (s *State) SetMonth(referenceDate time.Time) CalendarView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.displayedMonth = referenceDate
	return s.calendarView()
}

// GridFor builds a grid for any reference date without touching the
// displayed month.
func (s *State) GridFor(referenceDate time.Time) CalendarView {
	return newCalendarView(referenceDate, s.schedule)
}

// calendarView must be called with s.mu held.
func (s *State) calendarView() CalendarView {
	return newCalendarView(s.displayedMonth, s.schedule)
}

func newCalendarView(referenceDate time.Time, schedule calendar.Schedule) CalendarView {
	return CalendarView{
		ReferenceDate: calendar.DateString(referenceDate),
		Month:         referenceDate.Format("January 2006"),
		Grid:          calendar.BuildGrid(referenceDate, schedule),
	}
}
