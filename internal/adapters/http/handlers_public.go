package web

import (
	"errors"
	"net/http"

	"ironcore/internal/application/orchestrators"
	"ironcore/internal/domain/macro"
	"ironcore/internal/domain/message"
	"ironcore/internal/domain/trial"
)

// macroErrorMessage is shown in the results panel for unusable numbers.
const macroErrorMessage = "Please enter valid weight and body fat values."

// handleHome renders the landing page.
func handleHome(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, http.StatusOK, "home.html", "home", map[string]any{
		"Club":     catalogue.Club,
		"Programs": catalogue.Programs,
		"Plans":    catalogue.Plans,
	})
}

// handlePrograms renders the program cards.
func handlePrograms(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, http.StatusOK, "programs.html", "programs", map[string]any{
		"Programs": catalogue.Programs,
	})
}

// handleTrainers renders the coach profiles.
func handleTrainers(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, http.StatusOK, "trainers.html", "trainers", map[string]any{
		"Trainers": catalogue.Trainers,
	})
}

// handlePricing renders the membership plans and FAQ.
func handlePricing(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, http.StatusOK, "pricing.html", "pricing", map[string]any{
		"Plans": catalogue.Plans,
		"FAQs":  catalogue.FAQs,
	})
}

// nutritionData builds the nutrition page model around a calculator form state.
func nutritionData(form orchestrators.CalculateMacrosInput) map[string]any {
	return map[string]any{
		"Nutrition": catalogue.Nutrition,
		"Genders":   macro.ValidGenders,
		"Goals":     macro.ValidGoals,
		"Form":      form,
	}
}

// handleNutrition renders the nutrition page with an empty calculator.
func handleNutrition(w http.ResponseWriter, r *http.Request) {
	form := orchestrators.CalculateMacrosInput{
		Gender: string(macro.GenderMale),
		Goal:   string(macro.GoalMuscleBuilding),
	}
	renderPage(w, r, http.StatusOK, "nutrition.html", "nutrition", nutritionData(form))
}

// handleCalculateMacros handles POST /nutrition/macros.
// Unusable numbers re-render the form with the error message; gender and goal
// values the form never offers are rejected outright.
func handleCalculateMacros(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	form := orchestrators.CalculateMacrosInput{
		Gender:  r.FormValue("gender"),
		Weight:  r.FormValue("weight"),
		BodyFat: r.FormValue("bodyFat"),
		Goal:    r.FormValue("goal"),
	}

	var recorder orchestrators.MacroRecorder
	if perfCollector != nil {
		recorder = perfCollector
	}
	res, err := orchestrators.ExecuteCalculateMacros(r.Context(), form, orchestrators.CalculateMacrosDeps{Recorder: recorder})

	data := nutritionData(form)
	data["Calculated"] = true
	switch {
	case errors.Is(err, macro.ErrUnknownGender), errors.Is(err, macro.ErrUnknownGoal):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, macro.ErrInvalidInput):
		data["CalcError"] = macroErrorMessage
		renderPage(w, r, http.StatusUnprocessableEntity, "nutrition.html", "nutrition", data)
		return
	case err != nil:
		internalError(w, err)
		return
	}
	data["Result"] = res.Result
	data["Gauges"] = res.Gauges
	data["Goal"] = res.Input.Goal
	renderPage(w, r, http.StatusOK, "nutrition.html", "nutrition", data)
}

// trialData builds the trial page model.
func trialData(form orchestrators.RequestTrialInput) map[string]any {
	return map[string]any{
		"Goals":       trial.Goals,
		"Experiences": trial.ExperienceLevels,
		"Times":       trial.TrainingTimes,
		"Form":        form,
	}
}

// handleTrialForm renders the free-trial form, or the confirmation after a redirect.
func handleTrialForm(w http.ResponseWriter, r *http.Request) {
	data := trialData(orchestrators.RequestTrialInput{Goal: r.URL.Query().Get("goal")})
	data["Confirmed"] = r.URL.Query().Get("confirmed") == "1"
	renderPage(w, r, http.StatusOK, "trial.html", "trial", data)
}

// handleTrialSubmit handles POST /trial.
func handleTrialSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	form := orchestrators.RequestTrialInput{
		Goal:         r.FormValue("goal"),
		Name:         r.FormValue("name"),
		Phone:        r.FormValue("phone"),
		Email:        r.FormValue("email"),
		Experience:   r.FormValue("experience"),
		TrainingTime: r.FormValue("time"),
	}

	deps := orchestrators.RequestTrialDeps{
		TrialStore: stores.TrialStore,
		Mailer:     emailSender,
		Addresses:  mailAddresses,
		GenerateID: generateID,
		Now:        timeNow,
	}
	if perfCollector != nil {
		deps.Recorder = perfCollector
	}

	if _, err := orchestrators.ExecuteRequestTrial(r.Context(), form, deps); err != nil {
		if isAnyOf(err, trialValidationErrors) {
			data := trialData(form)
			data["Error"] = err.Error()
			renderPage(w, r, http.StatusUnprocessableEntity, "trial.html", "trial", data)
			return
		}
		internalError(w, err)
		return
	}
	http.Redirect(w, r, "/trial?confirmed=1", http.StatusSeeOther)
}

// trialValidationErrors are the request problems shown back to the visitor.
var trialValidationErrors = []error{
	trial.ErrMissingGoal, trial.ErrInvalidGoal, trial.ErrEmptyName, trial.ErrNameTooLong,
	trial.ErrEmptyPhone, trial.ErrPhoneTooLong, trial.ErrInvalidExperience,
	trial.ErrInvalidTime, trial.ErrInvalidEmail,
}

// contactValidationErrors are the message problems shown back to the visitor.
var contactValidationErrors = []error{
	message.ErrEmptyName, message.ErrNameTooLong, message.ErrInvalidEmail, message.ErrEmailTooLong,
	message.ErrEmptySubject, message.ErrSubjectTooLong, message.ErrEmptyBody, message.ErrBodyTooLong,
}

// isAnyOf reports whether err matches one of targets.
func isAnyOf(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// contactData builds the contact page model.
func contactData(form orchestrators.SendContactMessageInput) map[string]any {
	return map[string]any{
		"Contact": catalogue.Contact,
		"Form":    form,
	}
}

// handleContact renders the contact page; ?sent=1 shows the confirmation banner.
func handleContact(w http.ResponseWriter, r *http.Request) {
	data := contactData(orchestrators.SendContactMessageInput{})
	data["Sent"] = r.URL.Query().Get("sent") == "1"
	renderPage(w, r, http.StatusOK, "contact.html", "contact", data)
}

// handleContactSubmit handles POST /contact.
func handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	form := orchestrators.SendContactMessageInput{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Subject: r.FormValue("subject"),
		Body:    r.FormValue("message"),
	}

	deps := orchestrators.SendContactMessageDeps{
		MessageStore: stores.MessageStore,
		Mailer:       emailSender,
		Addresses:    mailAddresses,
		GenerateID:   generateID,
		Now:          timeNow,
	}
	if perfCollector != nil {
		deps.Recorder = perfCollector
	}

	if _, err := orchestrators.ExecuteSendContactMessage(r.Context(), form, deps); err != nil {
		if isAnyOf(err, contactValidationErrors) {
			data := contactData(form)
			data["Error"] = err.Error()
			renderPage(w, r, http.StatusUnprocessableEntity, "contact.html", "contact", data)
			return
		}
		internalError(w, err)
		return
	}
	http.Redirect(w, r, "/contact?sent=1", http.StatusSeeOther)
}
