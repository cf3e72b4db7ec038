package hypermedia

// JSON schemas embedded in create/edit controls. These mirror the
// validation rules enforced on write payloads.

func UserSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"first_name":   map[string]interface{}{"type": "string", "maxLength": 50},
			"last_name":    map[string]interface{}{"type": "string", "maxLength": 50},
			"email":        map[string]interface{}{"type": "string", "format": "email"},
			"phone_number": map[string]interface{}{"type": "string", "maxLength": 15},
			"address":      map[string]interface{}{"type": "string"},
		},
		"required": []string{"first_name", "last_name", "email"},
	}
}

func PostingSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"title":       map[string]interface{}{"type": "string", "maxLength": 100},
			"description": map[string]interface{}{"type": "string"},
			"price":       map[string]interface{}{"type": "number", "exclusiveMinimum": 0},
			"expires_at":  map[string]interface{}{"type": "string", "format": "date-time"},
			"status": map[string]interface{}{
				"type": "string",
				"enum": []string{"open", "expired", "accepted"},
			},
		},
		"required": []string{"title", "description", "price"},
	}
}

func GigSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"posting":  map[string]interface{}{"type": "string", "format": "uuid"},
			"end_date": map[string]interface{}{"type": "string", "format": "date-time"},
			"status": map[string]interface{}{
				"type": "string",
				"enum": []string{"pending", "in_progress", "completed"},
			},
		},
		"required": []string{"posting"},
	}
}

// SchemaIndex is served from the schema control of the root document.
func SchemaIndex() map[string]interface{} {
	return map[string]interface{}{
		"user":    UserSchema(),
		"posting": PostingSchema(),
		"gig":     GigSchema(),
	}
}
