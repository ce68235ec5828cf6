package models

// MovieRequest es el body de POST /movies y PUT /movies/{id}.
//
// genre y categories llegan como nombres; al guardar se reemplazan por los
// documentos completos de sus colecciones. cast y reviews son pasa-través:
// cada entrada lleva al menos "name" / "date" pero puede traer más campos.
type MovieRequest struct {
	Title       string           `json:"title"`
	Genre       string           `json:"genre"`
	Duration    int              `json:"duration"`
	ReleaseYear int              `json:"releaseYear"`
	Rating      float64          `json:"rating"`
	Cast        []map[string]any `json:"cast"`
	Reviews     []map[string]any `json:"reviews"`
	Categories  []string         `json:"categories"`
}
