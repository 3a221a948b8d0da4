package components

// HomeView is everything the landing page needs to render
type HomeView struct {
	Page    PageConfig
	Year    int
	Contact ContactForm
}

// ContactForm holds the contact section state for a server render.
// Values are only set when a no-JS submission has to be shown again.
type ContactForm struct {
	Name    string
	Email   string
	Message string
	Success bool
	Error   string
}

// ServiceArea is one card in the services grid
type ServiceArea struct {
	Slug  string
	Title string
	Items []string
}
