package github

// Repository is one repository owned by the queried user, carrying the
// per-language byte counts GitHub computed for it.
type Repository struct {
	Name      string         `json:"name"`
	Languages []LanguageEdge `json:"languages"`
}

// LanguageEdge is one language observed in a repository.
// Size is the byte count GitHub attributes to that language; Color is the
// display color from linguist, empty when linguist has none.
type LanguageEdge struct {
	Name  string  `json:"name"`
	Color string  `json:"color"`
	Size  float64 `json:"size"`
}

// graphQL wire types, kept private: callers only see Repository/LanguageEdge.

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlResponse struct {
	Data   *responseData  `json:"data"`
	Errors []graphqlError `json:"errors"`
}

type graphqlError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type responseData struct {
	User *struct {
		Repositories struct {
			Nodes []struct {
				Name      string `json:"name"`
				Languages struct {
					Edges []struct {
						Size float64 `json:"size"`
						Node struct {
							Name  string `json:"name"`
							Color string `json:"color"`
						} `json:"node"`
					} `json:"edges"`
				} `json:"languages"`
			} `json:"nodes"`
		} `json:"repositories"`
	} `json:"user"`
}
