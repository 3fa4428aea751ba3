package selector

// Category is one recommendable shoe category shown on the quiz result page.
type Category struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Blurb string `json:"blurb,omitempty"`
	Img   string `json:"img,omitempty"`
}
