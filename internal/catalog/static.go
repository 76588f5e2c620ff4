package catalog

// StaticFallback returns the built-in exercise list used when neither the
// local snapshot nor the remote API yields any exercises. All entries are
// bodyweight so that every equipment mode accepts them.
func StaticFallback() []Exercise {
	return []Exercise{
		{
			ID: "static-0001", Name: "push-up", NameES: "flexiones",
			BodyPart: "chest", Target: "pectorals", Equipment: "body weight",
			Difficulty: "beginner",
			Instructions: []string{
				"Start in a high plank with hands under the shoulders.",
				"Lower the chest until it almost touches the floor.",
				"Press back up to the starting position.",
			},
		},
		{
			ID: "static-0002", Name: "incline push-up", NameES: "flexiones inclinadas",
			BodyPart: "chest", Target: "pectorals", Equipment: "body weight",
			Difficulty: "beginner",
		},
		{
			ID: "static-0003", Name: "superman hold", NameES: "superman",
			BodyPart: "back", Target: "spine", Equipment: "body weight",
			Difficulty: "beginner",
		},
		{
			ID: "static-0004", Name: "reverse snow angel", NameES: "ángel invertido",
			BodyPart: "back", Target: "upper back", Equipment: "body weight",
			Difficulty: "beginner",
		},
		{
			ID: "static-0005", Name: "bodyweight squat", NameES: "sentadillas",
			BodyPart: "upper legs", Target: "quads", Equipment: "body weight",
			Difficulty: "beginner",
		},
		{
			ID: "static-0006", Name: "glute bridge", NameES: "puente de glúteos",
			BodyPart: "upper legs", Target: "glutes", Equipment: "body weight",
			Difficulty: "beginner",
		},
		{
			ID: "static-0007", Name: "walking lunge", NameES: "zancadas",
			BodyPart: "upper legs", Target: "quads", Equipment: "body weight",
			Difficulty: "intermediate",
		},
		{
			ID: "static-0008", Name: "standing calf raise", NameES: "elevación de talones",
			BodyPart: "lower legs", Target: "calves", Equipment: "body weight",
			Difficulty: "beginner",
		},
		{
			ID: "static-0009", Name: "pike shoulder press", NameES: "press pica",
			BodyPart: "shoulders", Target: "delts", Equipment: "body weight",
			Difficulty: "intermediate",
		},
		{
			ID: "static-0010", Name: "wall lateral raise", NameES: "elevaciones laterales en pared",
			BodyPart: "shoulders", Target: "delts", Equipment: "body weight",
			Difficulty: "beginner",
		},
		{
			ID: "static-0011", Name: "bench dip", NameES: "fondos en banco",
			BodyPart: "upper arms", Target: "triceps", Equipment: "body weight",
			Difficulty: "beginner",
		},
		{
			ID: "static-0012", Name: "plank", NameES: "plancha",
			BodyPart: "waist", Target: "abs", Equipment: "body weight",
			Category: "core", Difficulty: "beginner",
		},
		{
			ID: "static-0013", Name: "crunch", NameES: "abdominales",
			BodyPart: "waist", Target: "abs", Equipment: "body weight",
			Category: "core", Difficulty: "beginner",
		},
		{
			ID: "static-0014", Name: "side plank", NameES: "plancha lateral",
			BodyPart: "waist", Target: "obliques", Equipment: "body weight",
			Category: "core", Difficulty: "intermediate",
		},
		{
			ID: "static-0015", Name: "dead bug", NameES: "bicho muerto",
			BodyPart: "waist", Target: "core", Equipment: "body weight",
			Category: "core", Difficulty: "beginner",
		},
		{
			ID: "static-0016", Name: "march in place", NameES: "marcha en el sitio",
			BodyPart: "cardio", Target: "cardiovascular system", Equipment: "body weight",
			Category: "cardio", Difficulty: "beginner",
		},
		{
			ID: "static-0017", Name: "step touch", NameES: "paso lateral",
			BodyPart: "cardio", Target: "cardiovascular system", Equipment: "body weight",
			Category: "cardio", Difficulty: "beginner",
		},
		{
			ID: "static-0018", Name: "cat-cow stretch", NameES: "gato-vaca",
			BodyPart: "back", Target: "spine", Equipment: "body weight",
			Category: "stretching", Difficulty: "beginner",
		},
		{
			ID: "static-0019", Name: "standing hamstring stretch", NameES: "estiramiento de isquios",
			BodyPart: "upper legs", Target: "hamstrings", Equipment: "body weight",
			Category: "stretching", Difficulty: "beginner",
		},
		{
			ID: "static-0020", Name: "neck rotation", NameES: "rotación de cuello",
			BodyPart: "neck", Target: "levator scapulae", Equipment: "body weight",
			Category: "mobility", Difficulty: "beginner",
		},
	}
}
