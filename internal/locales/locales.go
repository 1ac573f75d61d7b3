// Package locales maps the stable field keys to display labels and
// error messages. Two locales are supported, French (default) and
// English. The locale only affects rendering; server-side validation
// is locale-independent.
package locales

import "github.com/gin-gonic/gin"

// Message keys beyond the per-field validation keys.
const (
	MsgSuccess     = "success"
	MsgCSRFInvalid = "csrf_invalid"
	MsgEmailExists = "email_exists"
	MsgStorage     = "storage_failed"
)

// Locale bundles the display strings for one language.
type Locale struct {
	Code     string
	Labels   map[string]string
	Messages map[string]string
}

var fr = Locale{
	Code: "fr",
	Labels: map[string]string{
		"title":     "Formulaire d'inscription client",
		"fullname":  "Nom complet",
		"email":     "Email",
		"phone":     "Téléphone",
		"birthdate": "Date de naissance",
		"address":   "Adresse",
		"submit":    "Envoyer",
	},
	Messages: map[string]string{
		"fullname":     "Le nom complet doit contenir entre 3 et 50 caractères.",
		"email":        "Veuillez saisir une adresse email valide.",
		"phone":        "Le numéro doit être au format 6XX XXX XXX ou 2376XX XXX XXX.",
		"birthdate":    "La date de naissance doit être une date valide dans le passé.",
		"address":      "L'adresse doit contenir au moins 3 caractères.",
		MsgSuccess:     "Vos informations ont été enregistrées avec succès.",
		MsgCSRFInvalid: "Jeton CSRF invalide, veuillez réessayer.",
		MsgEmailExists: "Cette adresse email est déjà enregistrée.",
		MsgStorage:     "Une erreur est survenue lors de l'enregistrement, veuillez réessayer.",
	},
}

var en = Locale{
	Code: "en",
	Labels: map[string]string{
		"title":     "Client registration form",
		"fullname":  "Full name",
		"email":     "Email",
		"phone":     "Phone",
		"birthdate": "Birth date",
		"address":   "Address",
		"submit":    "Submit",
	},
	Messages: map[string]string{
		"fullname":     "Full name must be between 3 and 50 characters.",
		"email":        "Please enter a valid email address.",
		"phone":        "Phone must match 6XX XXX XXX or 2376XX XXX XXX.",
		"birthdate":    "Birth date must be a valid date in the past.",
		"address":      "Address must be at least 3 characters.",
		MsgSuccess:     "Your information was saved successfully.",
		MsgCSRFInvalid: "Invalid CSRF token, please try again.",
		MsgEmailExists: "This email address is already registered.",
		MsgStorage:     "Something went wrong while saving, please try again.",
	},
}

// Get returns the locale for a language code, falling back to French.
func Get(code string) Locale {
	if code == "en" {
		return en
	}
	return fr
}

// FromRequest resolves the locale from the lang query parameter, then
// the lang cookie, defaulting to French.
func FromRequest(c *gin.Context) Locale {
	if lang := c.Query("lang"); lang != "" {
		return Get(lang)
	}
	if lang, err := c.Cookie("lang"); err == nil && lang != "" {
		return Get(lang)
	}
	return fr
}
