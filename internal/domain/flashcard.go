package domain

type Flashcard struct {
	Title string
	Body  string
}

var flashcards = []Flashcard{
	{Title: "Stay hydrated", Body: "Drink water regularly, more when you have a fever or diarrhea."},
	{Title: "Rest matters", Body: "Adults need 7-9 hours of sleep for the immune system to recover."},
	{Title: "Know the red flags", Body: "Chest pain, shortness of breath or sudden weakness need emergency care."},
	{Title: "Describe clearly", Body: "Mention when a symptom started, how severe it is and what makes it worse."},
}

func Flashcards() []Flashcard {
	return append([]Flashcard(nil), flashcards...)
}
