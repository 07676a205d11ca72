package gymstats

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/vfit-app/vfit/internal/gymstats/calendar"
	"github.com/vfit-app/vfit/internal/gymstats/calories"
	"github.com/vfit-app/vfit/internal/gymstats/tracker"
	"github.com/vfit-app/vfit/internal/middleware"
	"github.com/vfit-app/vfit/internal/telemetry/metrics"
	"github.com/vfit-app/vfit/internal/telemetry/tracing"
	"github.com/vfit-app/vfit/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=gymstats_test

type workoutTracker interface {
	AddWorkout(ctx context.Context, form tracker.WorkoutForm) (tracker.Workout, error)
	Workouts() []tracker.Workout
	AddMeal(form tracker.MealForm) (tracker.Meal, error)
	Meals() []tracker.Meal
	Stats() tracker.Stats
	Profile() tracker.Profile
	UpdateProfile(form tracker.ProfileForm) (tracker.Profile, error)
	Calendar() tracker.CalendarView
	NextMonth() tracker.CalendarView
	PrevMonth() tracker.CalendarView
	SetMonth(referenceDate time.Time) tracker.CalendarView
	GridFor(referenceDate time.Time) tracker.CalendarView
}

type EstimateResponse struct {
	Calories        int               `json:"calories"`
	DurationMinutes float64           `json:"durationMinutes"`
	Category        calories.Category `json:"category"`
}

type CategoryRate struct {
	Category          calories.Category `json:"category"`
	CaloriesPerMinute float64           `json:"caloriesPerMinute"`
}

type WorkoutsResponse struct {
	Workouts []tracker.Workout `json:"workouts"`
	Stats    tracker.Stats     `json:"stats"`
}

type MealsResponse struct {
	Meals []tracker.Meal `json:"meals"`
	Stats tracker.Stats  `json:"stats"`
}

type Handler struct {
	tracker        workoutTracker
	metricsManager *metrics.Manager
}

func NewHandler(tracker workoutTracker, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		tracker:        tracker,
		metricsManager: metricsManager,
	}
}

// SetupRoutes registers the tracker API. Write endpoints are rate limited
// when a limiter is given.
func (handler *Handler) SetupRoutes(mainRouter *mux.Router, rateLimiter middleware.RequestRateLimiter, allowedPerMin int) {
	r := mainRouter.NewRoute().Subrouter()

	r.HandleFunc("/calories/estimate", handler.HandleEstimate).Methods("GET").Name("calories-estimate")
	r.HandleFunc("/categories", handler.HandleCategories).Methods("GET").Name("categories")

	r.HandleFunc("/workouts", handler.HandleAddWorkout).Methods("POST", "OPTIONS").Name("workouts-add")
	r.HandleFunc("/workouts", handler.HandleListWorkouts).Methods("GET").Name("workouts-list")
	r.HandleFunc("/stats", handler.HandleStats).Methods("GET").Name("stats")

	r.HandleFunc("/meals", handler.HandleAddMeal).Methods("POST", "OPTIONS").Name("meals-add")
	r.HandleFunc("/meals", handler.HandleListMeals).Methods("GET").Name("meals-list")

	r.HandleFunc("/profile", handler.HandleGetProfile).Methods("GET").Name("profile-get")
	r.HandleFunc("/profile", handler.HandleUpdateProfile).Methods("PUT", "OPTIONS").Name("profile-update")

	r.HandleFunc("/calendar", handler.HandleCalendar).Methods("GET").Name("calendar")
	r.HandleFunc("/calendar/next", handler.HandleNextMonth).Methods("POST", "OPTIONS").Name("calendar-next")
	r.HandleFunc("/calendar/prev", handler.HandlePrevMonth).Methods("POST", "OPTIONS").Name("calendar-prev")
	r.HandleFunc("/calendar/grid", handler.HandleGrid).Methods("GET").Name("calendar-grid")

	if rateLimiter != nil {
		r.Use(middleware.RateLimit(rateLimiter, "gymstats", allowedPerMin, handler.metricsManager))
	}
}

func (handler *Handler) HandleEstimate(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.estimate")
	defer span.End()

	durationStr := r.URL.Query().Get("duration")
	categoryStr := r.URL.Query().Get("category")
	if categoryStr == "" {
		categoryStr = string(calories.CategoryCardio)
	}
	span.SetAttributes(
		attribute.String("duration", durationStr),
		attribute.String("category", categoryStr),
	)

	duration, err := strconv.ParseFloat(strings.TrimSpace(durationStr), 64)
	if err != nil {
		handler.estimateFailed("invalid_duration")
		http.Error(w, "error, duration must be a number", http.StatusBadRequest)
		return
	}

	category, err := calories.ParseCategory(categoryStr)
	if err != nil {
		handler.estimateFailed("invalid_category")
		http.Error(w, "error, unknown category", http.StatusBadRequest)
		return
	}

	cals, err := calories.Estimate(duration, category)
	switch {
	case errors.Is(err, calories.ErrInvalidDuration):
		handler.estimateFailed("invalid_duration")
		http.Error(w, "error, duration must be a positive number of minutes", http.StatusBadRequest)
		return
	case err != nil:
		log.Errorf("estimate calories [%s] [%s]: %s", durationStr, categoryStr, err)
		handler.estimateFailed("other")
		http.Error(w, "error, estimate failed", http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, EstimateResponse{
		Calories:        cals,
		DurationMinutes: duration,
		Category:        category,
	}, http.StatusOK)
}

func (handler *Handler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.categories")
	defer span.End()

	categories := calories.Categories()
	rates := make([]CategoryRate, 0, len(categories))
	for _, c := range categories {
		rate, err := c.Rate()
		if err != nil {
			log.Errorf("missing rate for category [%s]: %s", c, err)
			continue
		}
		rates = append(rates, CategoryRate{Category: c, CaloriesPerMinute: rate})
	}
	pkg.WriteJSON(w, rates, http.StatusOK)
}

func (handler *Handler) HandleAddWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.addWorkout")
	defer span.End()

	if !isJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var form tracker.WorkoutForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.Errorf("add workout, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}

	workout, err := handler.tracker.AddWorkout(ctx, form)
	if err != nil {
		handler.writeTrackerError(w, "add workout", err)
		return
	}

	log.Debugf("new workout added: [%s] [%s] %.1f min: %d kcal", workout.ID, workout.Category, workout.DurationMinutes, workout.Calories)
	if handler.metricsManager != nil {
		handler.metricsManager.CounterWorkoutsLogged.WithLabelValues(workout.Category.String()).Inc()
		handler.metricsManager.CounterCaloriesEstimated.WithLabelValues(workout.Category.String()).Add(float64(workout.Calories))
	}

	pkg.WriteJSON(w, workout, http.StatusCreated)
}

func (handler *Handler) HandleListWorkouts(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.listWorkouts")
	defer span.End()

	pkg.WriteJSON(w, WorkoutsResponse{
		Workouts: handler.tracker.Workouts(),
		Stats:    handler.tracker.Stats(),
	}, http.StatusOK)
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.stats")
	defer span.End()

	pkg.WriteJSON(w, handler.tracker.Stats(), http.StatusOK)
}

func (handler *Handler) HandleAddMeal(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.addMeal")
	defer span.End()

	if !isJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var form tracker.MealForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.Errorf("add meal, unmarshal json params: %s", err)
		http.Error(w, "add meal failed", http.StatusBadRequest)
		return
	}

	meal, err := handler.tracker.AddMeal(form)
	if err != nil {
		handler.writeTrackerError(w, "add meal", err)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterMealsLogged.Inc()
	}

	pkg.WriteJSON(w, meal, http.StatusCreated)
}

func (handler *Handler) HandleListMeals(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.listMeals")
	defer span.End()

	pkg.WriteJSON(w, MealsResponse{
		Meals: handler.tracker.Meals(),
		Stats: handler.tracker.Stats(),
	}, http.StatusOK)
}

func (handler *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.getProfile")
	defer span.End()

	pkg.WriteJSON(w, handler.tracker.Profile(), http.StatusOK)
}

func (handler *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.updateProfile")
	defer span.End()

	if !isJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var form tracker.ProfileForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.Errorf("update profile, unmarshal json params: %s", err)
		http.Error(w, "update profile failed", http.StatusBadRequest)
		return
	}

	profile, err := handler.tracker.UpdateProfile(form)
	if err != nil {
		handler.writeTrackerError(w, "update profile", err)
		return
	}

	pkg.WriteJSON(w, profile, http.StatusOK)
}

// HandleCalendar returns the displayed month. An optional date param moves
// the displayed month first.
func (handler *Handler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.calendar")
	defer span.End()

	var view tracker.CalendarView
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := parseDate(dateStr)
		if err != nil {
			http.Error(w, "error, date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		view = handler.tracker.SetMonth(date)
	} else {
		view = handler.tracker.Calendar()
	}

	handler.gridBuilt()
	pkg.WriteJSON(w, view, http.StatusOK)
}

func (handler *Handler) HandleNextMonth(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.nextMonth")
	defer span.End()

	view := handler.tracker.NextMonth()
	span.SetAttributes(attribute.String("month", view.Month))

	handler.gridBuilt()
	pkg.WriteJSON(w, view, http.StatusOK)
}

func (handler *Handler) HandlePrevMonth(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.prevMonth")
	defer span.End()

	view := handler.tracker.PrevMonth()
	span.SetAttributes(attribute.String("month", view.Month))

	handler.gridBuilt()
	pkg.WriteJSON(w, view, http.StatusOK)
}

// HandleGrid builds a grid for any date without touching the displayed month.
func (handler *Handler) HandleGrid(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.grid")
	defer span.End()

	date, err := parseDate(r.URL.Query().Get("date"))
	if err != nil {
		http.Error(w, "error, date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	handler.gridBuilt()
	pkg.WriteJSON(w, handler.tracker.GridFor(date), http.StatusOK)
}

func (handler *Handler) writeTrackerError(w http.ResponseWriter, action string, err error) {
	var formErr *tracker.FormError
	if errors.As(err, &formErr) {
		log.Tracef("%s, invalid form: %s", action, err)
		pkg.WriteJSON(w, formErr, http.StatusBadRequest)
		return
	}

	if errors.Is(err, calories.ErrInvalidDuration) || errors.Is(err, calories.ErrInvalidCategory) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	log.Errorf("%s: %s", action, err)
	http.Error(w, "error, "+action+" failed", http.StatusInternalServerError)
}

func (handler *Handler) estimateFailed(reason string) {
	if handler.metricsManager != nil {
		handler.metricsManager.CounterEstimateErrors.WithLabelValues(reason).Inc()
	}
}

func (handler *Handler) gridBuilt() {
	if handler.metricsManager != nil {
		handler.metricsManager.CounterGridBuilds.Inc()
	}
}

func isJSONRequest(r *http.Request) bool {
	contentType, _, _ := strings.Cut(r.Header.Get("Content-Type"), ";")
	return strings.TrimSpace(contentType) == pkg.ContentType.JSON
}

func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(calendar.DateLayout, strings.TrimSpace(dateStr), time.Local)
}
