package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"ironcore/internal/application/orchestrators"
	"ironcore/internal/domain/signup"
)

// joinForm keeps the raw profile numbers so a failed submit echoes what was typed.
type joinForm struct {
	orchestrators.RegisterMemberInput
	AgeText    string
	WeightText string
}

func joinData(form joinForm, step int) map[string]any {
	picked := make(map[string]bool, len(form.Goals))
	for _, g := range form.Goals {
		picked[g] = true
	}
	return map[string]any{
		"Steps":      signup.StepLabels,
		"Goals":      signup.Goals,
		"Levels":     signup.Levels,
		"Form":       form,
		"Picked":     picked,
		"FailedStep": step,
	}
}

// handleJoin renders the three-step sign-up form, or the welcome after a redirect.
func handleJoin(w http.ResponseWriter, r *http.Request) {
	data := joinData(joinForm{}, 0)
	data["Joined"] = r.URL.Query().Get("joined") == "1"
	renderPage(w, r, http.StatusOK, "join.html", "join", data)
}

// handleJoinSubmit handles POST /join.
func handleJoinSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	form := joinForm{
		RegisterMemberInput: orchestrators.RegisterMemberInput{
			Name:     r.FormValue("name"),
			Email:    r.FormValue("email"),
			Password: r.FormValue("password"),
			Goals:    r.Form["goals"],
			Level:    r.FormValue("level"),
		},
		AgeText:    strings.TrimSpace(r.FormValue("age")),
		WeightText: strings.TrimSpace(r.FormValue("weight")),
	}
	// Unparseable numbers become -1 so the range check rejects them.
	if form.AgeText != "" {
		if n, err := strconv.Atoi(form.AgeText); err == nil {
			form.Age = n
		} else {
			form.Age = -1
		}
	}
	if form.WeightText != "" {
		if f, err := strconv.ParseFloat(form.WeightText, 64); err == nil {
			form.WeightKg = f
		} else {
			form.WeightKg = -1
		}
	}

	deps := orchestrators.RegisterMemberDeps{
		UserStore:  stores.UserStore,
		Mailer:     emailSender,
		Addresses:  mailAddresses,
		GenerateID: generateID,
		Now:        timeNow,
	}
	if perfCollector != nil {
		deps.Recorder = perfCollector
	}

	if _, err := orchestrators.ExecuteRegisterMember(r.Context(), form.RegisterMemberInput, deps); err != nil {
		step := signup.StepOf(err)
		if errors.Is(err, orchestrators.ErrEmailTaken) {
			step = signup.StepAccount
		}
		if step == 0 {
			internalError(w, err)
			return
		}
		form.Password = ""
		data := joinData(form, step)
		data["Error"] = err.Error()
		renderPage(w, r, http.StatusUnprocessableEntity, "join.html", "join", data)
		return
	}
	http.Redirect(w, r, "/join?joined=1", http.StatusSeeOther)
}

// handleJoinLogin handles GET and POST /join/login.
// Members have no stored password; a matching active account gets a welcome back and no session.
func handleJoinLogin(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{"Login": true, "Email": ""}
	if r.Method != http.MethodPost {
		renderPage(w, r, http.StatusOK, "join.html", "join", data)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	in := orchestrators.MemberLoginInput{Email: r.FormValue("email"), Password: r.FormValue("password")}
	u, err := orchestrators.ExecuteMemberLogin(r.Context(), in, stores.UserStore)
	if err != nil {
		if isAnyOf(err, memberLoginErrors) {
			data["Email"] = in.Email
			data["Error"] = err.Error()
			renderPage(w, r, http.StatusUnprocessableEntity, "join.html", "join", data)
			return
		}
		internalError(w, err)
		return
	}
	data["Member"] = u
	renderPage(w, r, http.StatusOK, "join.html", "join", data)
}

// memberLoginErrors are the sign-in problems shown back to the visitor.
var memberLoginErrors = []error{
	signup.ErrInvalidEmail, signup.ErrEmptyPassword,
	orchestrators.ErrUnknownMember, orchestrators.ErrMemberBlocked,
}
