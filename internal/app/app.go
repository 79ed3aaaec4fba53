package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Charles-pyt/Frigo-Ai/internal/account"
	"github.com/Charles-pyt/Frigo-Ai/internal/ai"
	"github.com/Charles-pyt/Frigo-Ai/internal/pantry"
	"github.com/Charles-pyt/Frigo-Ai/internal/recipe"
	"github.com/Charles-pyt/Frigo-Ai/internal/store"
)

// FreeInventoryLimit is the inventory size beyond which adding items
// requires an account.
const FreeInventoryLimit = 10

// noticeTTL is how long transient notices and failures stay visible
// before auto-clearing.
const noticeTTL = 3 * time.Second

// Pending action kinds. The gate stores these with their payloads; the
// orchestrator is the only party that knows how to perform them.
const (
	PendingAddItems        = "add_items"
	PendingGenerateRecipes = "generate_recipes"
)

// addItemsPayload is the serialized payload of a deferred add.
type addItemsPayload struct {
	Items []pantry.Draft `json:"items"`
}

// Phase is the lifecycle of one independent asynchronous concern.
type Phase int

const (
	// PhaseIdle means no request is running for this concern.
	PhaseIdle Phase = iota
	// PhaseInFlight means a request is running; a duplicate is rejected.
	PhaseInFlight
)

// Outcome reports how a gated action resolved.
type Outcome int

const (
	// OutcomeDone means the action executed.
	OutcomeDone Outcome = iota
	// OutcomeLoginRequired means the action was captured as pending and
	// the caller should present the login interface.
	OutcomeLoginRequired
)

// transient is a message with an auto-clear deadline.
type transient struct {
	message  string
	deadline time.Time
}

// App is the orchestrator. Not safe for concurrent use: all transitions
// run on a single logical thread, which is what makes them atomic with
// respect to each other.
type App struct {
	creds   *account.Credentials
	gate    *account.Gate
	ai      ai.Client
	scratch store.KV

	inventory *pantry.Inventory
	recipes   []recipe.Recipe
	view      View

	recipePhase Phase
	scanPhase   Phase

	notice  transient
	failure transient

	now func() time.Time
	log *slog.Logger
}

// Option configures an App.
type Option func(*App)

// WithClock overrides the wall clock. Tests use this to control notice
// expiry and add-timestamps.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

// WithLogger overrides the default logger.
func WithLogger(log *slog.Logger) Option {
	return func(a *App) {
		a.log = log
	}
}

// New builds the orchestrator over the two storage scopes and the AI
// client, restoring any working state a previous command left in the
// session. The session marker is read as found and not re-validated -
// login established it, nothing re-checks it afterwards.
func New(durable, scratch store.KV, client ai.Client, opts ...Option) (*App, error) {
	creds := account.NewCredentials(durable, scratch)

	a := &App{
		creds:   creds,
		gate:    account.NewGate(creds, scratch),
		ai:      client,
		scratch: scratch,
		now:     time.Now,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}

	st, err := loadState(scratch)
	if err != nil {
		return nil, err
	}
	a.inventory = pantry.Restore(st.Items, pantry.WithClock(a.now))
	a.recipes = st.Recipes
	a.view = viewFromString(st.View)

	return a, nil
}

// IdentifyFoods runs the identify-foods AI call on an image. Scanning is
// not gated: anyone may point the camera at their fridge. Failures set a
// transient message suggesting a retry and are reported as a typed error.
func (a *App) IdentifyFoods(ctx context.Context, image []byte, mimeType string) ([]string, error) {
	if a.scanPhase == PhaseInFlight {
		return nil, &Error{Code: CodeScanInFlight, Message: "a scan is already running"}
	}
	a.scanPhase = PhaseInFlight
	defer func() { a.scanPhase = PhaseIdle }()

	names, err := a.ai.IdentifyFoods(ctx, image, mimeType)
	if err != nil {
		a.log.Error("food identification failed", "schema_violation", ai.IsSchemaViolation(err), "error", err)
		a.setFailure(msgScanFailed)
		return nil, &Error{Code: CodeScanFailed, Message: msgScanFailed, Err: err}
	}
	return names, nil
}

// SubmitScanResult confirms scanned items into the inventory.
//
// Business rule: the add is gated only when the resulting inventory size
// would exceed FreeInventoryLimit and no session is active. Under the
// limit, or logged in, it applies immediately.
func (a *App) SubmitScanResult(items []pantry.Draft) (Outcome, error) {
	if a.inventory.Len()+len(items) <= FreeInventoryLimit {
		return OutcomeDone, a.applyAdd(items)
	}

	payload, err := json.Marshal(addItemsPayload{Items: items})
	if err != nil {
		return OutcomeDone, fmt.Errorf("encode add payload: %w", err)
	}
	ran, err := a.gate.Run(
		account.PendingAction{Kind: PendingAddItems, Payload: payload},
		func() error { return a.applyAdd(items) },
	)
	if err != nil {
		return OutcomeDone, err
	}
	if !ran {
		return OutcomeLoginRequired, nil
	}
	return OutcomeDone, nil
}

// RemoveItem deletes an item by identity. Unconditional: never gated,
// never an error for an unknown identity.
func (a *App) RemoveItem(id string) error {
	if a.inventory.Remove(id) {
		return a.persist()
	}
	return nil
}

// RequestRecipes runs the generate-recipes AI call over the inventory.
//
// Fails fast with a validation error when the inventory is empty - no AI
// call is made. Otherwise the call is always gated: without a session it
// becomes the pending action. On success the previous recipe set is
// replaced wholesale; on failure it is left untouched.
func (a *App) RequestRecipes(ctx context.Context) (Outcome, error) {
	if a.inventory.Len() == 0 {
		a.setFailure(msgEmptyInventory)
		return OutcomeDone, &Error{Code: CodeEmptyInventory, Message: msgEmptyInventory}
	}

	ran, err := a.gate.Run(
		account.PendingAction{Kind: PendingGenerateRecipes},
		func() error { return a.generateRecipes(ctx) },
	)
	if err != nil {
		return OutcomeDone, err
	}
	if !ran {
		return OutcomeLoginRequired, nil
	}
	return OutcomeDone, nil
}

// SignUp registers a new account. On success the session is established,
// a welcome notice is shown, and the pending action (if any) runs
// exactly once. On failure nothing changes and the login interface stays
// open.
func (a *App) SignUp(ctx context.Context, email, password string) error {
	if err := a.creds.Register(email, password); err != nil {
		return err
	}
	a.setNotice(msgSignedUp)
	return a.resolvePending(ctx)
}

// LogIn authenticates an existing account; same pending-action semantics
// as SignUp.
func (a *App) LogIn(ctx context.Context, email, password string) error {
	if err := a.creds.Authenticate(email, password); err != nil {
		return err
	}
	a.setNotice(msgLoggedIn)
	return a.resolvePending(ctx)
}

// DismissLogin closes the login interface without authenticating,
// discarding any pending action.
func (a *App) DismissLogin() error {
	return a.gate.Dismiss()
}

// LogOut clears the session marker. Always succeeds.
func (a *App) LogOut() error {
	if err := a.creds.Logout(); err != nil {
		return err
	}
	a.setNotice(msgLoggedOut)
	return nil
}

// CurrentUser returns the logged-in email, with ok=false when logged out.
func (a *App) CurrentUser() (string, bool) {
	email, ok, err := a.creds.CurrentUser()
	if err != nil {
		a.log.Error("failed to read session marker", "error", err)
		return "", false
	}
	return email, ok
}

// Inventory returns the items in insertion order.
func (a *App) Inventory() []pantry.Item {
	return a.inventory.Items()
}

// Recipes returns the current recipe set.
func (a *App) Recipes() []recipe.Recipe {
	return a.recipes
}

// ItemRecipes cross-references one inventory item against the current
// recipe set: the recipes whose ingredients mention it, in order.
func (a *App) ItemRecipes(id string) (pantry.Item, []recipe.Recipe, error) {
	item, ok := a.inventory.Get(id)
	if !ok {
		return pantry.Item{}, nil, &Error{Code: CodeUnknownItem, Message: fmt.Sprintf("no item with id %q", id)}
	}
	return item, recipe.AssociatedRecipes(item.Name, a.recipes), nil
}

// CurrentView returns the view the front end should show.
func (a *App) CurrentView() View {
	return a.view
}

// SwitchView changes the current view.
func (a *App) SwitchView(v View) error {
	a.view = v
	return a.persist()
}

// RecipePhase reports whether a recipe generation is in flight.
func (a *App) RecipePhase() Phase {
	return a.recipePhase
}

// ScanPhase reports whether a scan is in flight.
func (a *App) ScanPhase() Phase {
	return a.scanPhase
}

// Notice returns the current success notice, if it has not expired.
func (a *App) Notice() (string, bool) {
	return a.readTransient(a.notice)
}

// Failure returns the current transient failure, if it has not expired.
func (a *App) Failure() (string, bool) {
	return a.readTransient(a.failure)
}

// applyAdd is the core add transition: append, switch to the inventory
// view, notify.
func (a *App) applyAdd(items []pantry.Draft) error {
	added := a.inventory.Add(items)
	a.view = ViewInventory
	a.setNotice(fmt.Sprintf(msgItemsAddedFmt, len(added)))
	a.log.Info("items added", "count", len(added), "inventory_size", a.inventory.Len())
	return a.persist()
}

// generateRecipes is the core generation transition, guarded against
// duplicate in-flight requests.
func (a *App) generateRecipes(ctx context.Context) error {
	if a.recipePhase == PhaseInFlight {
		return &Error{Code: CodeGenerationInFlight, Message: "recipe generation is already running"}
	}
	a.recipePhase = PhaseInFlight
	defer func() { a.recipePhase = PhaseIdle }()

	generated, err := a.ai.GenerateRecipes(ctx, a.inventory.Names())
	if err != nil {
		// Prior recipes are left untouched on any failure.
		a.log.Error("recipe generation failed", "schema_violation", ai.IsSchemaViolation(err), "error", err)
		a.setFailure(msgRecipesFailed)
		return &Error{Code: CodeGenerationFailed, Message: msgRecipesFailed, Err: err}
	}

	a.recipes = generated
	a.log.Info("recipes generated", "count", len(generated))
	return a.persist()
}

// resolvePending pops and performs the pending action after a successful
// login or signup. The gate clears the action before handing it over, so
// it runs at most once even if performing it fails.
func (a *App) resolvePending(ctx context.Context) error {
	p, ok, err := a.gate.Resolve()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	switch p.Kind {
	case PendingAddItems:
		var payload addItemsPayload
		if err := json.Unmarshal(p.Payload, &payload); err != nil {
			return fmt.Errorf("decode pending add: %w", err)
		}
		return a.applyAdd(payload.Items)
	case PendingGenerateRecipes:
		return a.generateRecipes(ctx)
	default:
		return &Error{Code: CodeUnknownPendingAction, Message: fmt.Sprintf("unknown pending action %q", p.Kind)}
	}
}

func (a *App) persist() error {
	return saveState(a.scratch, sessionState{
		Items:   a.inventory.Items(),
		Recipes: a.recipes,
		View:    a.view.String(),
	})
}

func (a *App) setNotice(msg string) {
	a.notice = transient{message: msg, deadline: a.now().Add(noticeTTL)}
}

func (a *App) setFailure(msg string) {
	a.failure = transient{message: msg, deadline: a.now().Add(noticeTTL)}
}

func (a *App) readTransient(tr transient) (string, bool) {
	if tr.message == "" || !a.now().Before(tr.deadline) {
		return "", false
	}
	return tr.message, true
}
