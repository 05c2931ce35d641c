package catalog

import "github.com/nutriforge/v1/internal/domain/catalog"

// seedEntries returns the built-in exercise catalog used when no catalog file
// is configured. Every seed entry carries demonstration media.
func seedEntries() []catalog.Entry {
	return []catalog.Entry{
		{ID: "ex001", Name: "Push-Up", BodyPart: "chest", TargetMuscles: []string{"pectorals", "triceps", "deltoids"}, Equipment: "bodyweight", MediaURL: "https://media.nutriforge.io/exercises/ex001.gif"},
		{ID: "ex002", Name: "Pull-Up", BodyPart: "back", TargetMuscles: []string{"lats", "biceps", "forearms"}, Equipment: "pull-up bar", MediaURL: "https://media.nutriforge.io/exercises/ex002.gif"},
		{ID: "ex003", Name: "Bodyweight Squat", BodyPart: "legs", TargetMuscles: []string{"quadriceps", "glutes", "hamstrings"}, Equipment: "bodyweight", MediaURL: "https://media.nutriforge.io/exercises/ex003.gif"},
		{ID: "ex004", Name: "Barbell Back Squat", BodyPart: "legs", TargetMuscles: []string{"quadriceps", "glutes", "hamstrings"}, Equipment: "barbell", MediaURL: "https://media.nutriforge.io/exercises/ex004.gif"},
		{ID: "ex005", Name: "Barbell Bench Press", BodyPart: "chest", TargetMuscles: []string{"pectorals", "triceps", "deltoids"}, Equipment: "barbell", MediaURL: "https://media.nutriforge.io/exercises/ex005.gif"},
		{ID: "ex006", Name: "Barbell Deadlift", BodyPart: "back", TargetMuscles: []string{"erector spinae", "glutes", "hamstrings", "traps"}, Equipment: "barbell", MediaURL: "https://media.nutriforge.io/exercises/ex006.gif"},
		{ID: "ex007", Name: "Overhead Press", BodyPart: "shoulders", TargetMuscles: []string{"deltoids", "triceps"}, Equipment: "barbell", MediaURL: "https://media.nutriforge.io/exercises/ex007.gif"},
		{ID: "ex008", Name: "Dumbbell Shoulder Press", BodyPart: "shoulders", TargetMuscles: []string{"deltoids", "triceps"}, Equipment: "dumbbell", MediaURL: "https://media.nutriforge.io/exercises/ex008.gif"},
		{ID: "ex009", Name: "Dumbbell Bicep Curl", BodyPart: "arms", TargetMuscles: []string{"biceps", "forearms"}, Equipment: "dumbbell", MediaURL: "https://media.nutriforge.io/exercises/ex009.gif"},
		{ID: "ex010", Name: "Dumbbell Lateral Raise", BodyPart: "shoulders", TargetMuscles: []string{"deltoids"}, Equipment: "dumbbell", MediaURL: "https://media.nutriforge.io/exercises/ex010.gif"},
		{ID: "ex011", Name: "Dumbbell Row", BodyPart: "back", TargetMuscles: []string{"lats", "rhomboids", "biceps"}, Equipment: "dumbbell", MediaURL: "https://media.nutriforge.io/exercises/ex011.gif"},
		{ID: "ex012", Name: "Dumbbell Lunge", BodyPart: "legs", TargetMuscles: []string{"quadriceps", "glutes", "hamstrings"}, Equipment: "dumbbell", MediaURL: "https://media.nutriforge.io/exercises/ex012.gif"},
		{ID: "ex013", Name: "Plank", BodyPart: "core", TargetMuscles: []string{"abdominals", "obliques"}, Equipment: "bodyweight", MediaURL: "https://media.nutriforge.io/exercises/ex013.gif"},
		{ID: "ex014", Name: "Russian Twist", BodyPart: "core", TargetMuscles: []string{"obliques", "abdominals"}, Equipment: "bodyweight", MediaURL: "https://media.nutriforge.io/exercises/ex014.gif"},
		{ID: "ex015", Name: "Mountain Climber", BodyPart: "core", TargetMuscles: []string{"abdominals", "hip flexors", "deltoids"}, Equipment: "bodyweight", MediaURL: "https://media.nutriforge.io/exercises/ex015.gif"},
		{ID: "ex016", Name: "Burpee", BodyPart: "full body", TargetMuscles: []string{"quadriceps", "pectorals", "abdominals"}, Equipment: "bodyweight", MediaURL: "https://media.nutriforge.io/exercises/ex016.gif"},
		{ID: "ex017", Name: "Jumping Jack", BodyPart: "full body", TargetMuscles: []string{"calves", "deltoids", "hip flexors"}, Equipment: "bodyweight", MediaURL: "https://media.nutriforge.io/exercises/ex017.gif"},
		{ID: "ex018", Name: "Kettlebell Swing", BodyPart: "full body", TargetMuscles: []string{"glutes", "hamstrings", "erector spinae"}, Equipment: "kettlebell", MediaURL: "https://media.nutriforge.io/exercises/ex018.gif"},
		{ID: "ex019", Name: "Kettlebell Goblet Squat", BodyPart: "legs", TargetMuscles: []string{"quadriceps", "glutes"}, Equipment: "kettlebell", MediaURL: "https://media.nutriforge.io/exercises/ex019.gif"},
		{ID: "ex020", Name: "Lat Pulldown", BodyPart: "back", TargetMuscles: []string{"lats", "biceps"}, Equipment: "cable machine", MediaURL: "https://media.nutriforge.io/exercises/ex020.gif"},
		{ID: "ex021", Name: "Seated Cable Row", BodyPart: "back", TargetMuscles: []string{"lats", "rhomboids", "biceps"}, Equipment: "cable machine", MediaURL: "https://media.nutriforge.io/exercises/ex021.gif"},
		{ID: "ex022", Name: "Cable Tricep Pushdown", BodyPart: "arms", TargetMuscles: []string{"triceps"}, Equipment: "cable machine", MediaURL: "https://media.nutriforge.io/exercises/ex022.gif"},
		{ID: "ex023", Name: "Leg Press", BodyPart: "legs", TargetMuscles: []string{"quadriceps", "glutes"}, Equipment: "leg press machine", MediaURL: "https://media.nutriforge.io/exercises/ex023.gif"},
		{ID: "ex024", Name: "Leg Curl", BodyPart: "legs", TargetMuscles: []string{"hamstrings"}, Equipment: "leg curl machine", MediaURL: "https://media.nutriforge.io/exercises/ex024.gif"},
		{ID: "ex025", Name: "Calf Raise", BodyPart: "legs", TargetMuscles: []string{"calves"}, Equipment: "bodyweight", MediaURL: "https://media.nutriforge.io/exercises/ex025.gif"},
		{ID: "ex026", Name: "Glute Bridge", BodyPart: "legs", TargetMuscles: []string{"glutes", "hamstrings"}, Equipment: "bodyweight", MediaURL: "https://media.nutriforge.io/exercises/ex026.gif"},
		{ID: "ex027", Name: "Dip", BodyPart: "arms", TargetMuscles: []string{"triceps", "pectorals"}, Equipment: "dip bars", MediaURL: "https://media.nutriforge.io/exercises/ex027.gif"},
		{ID: "ex028", Name: "Bent-Over Barbell Row", BodyPart: "back", TargetMuscles: []string{"lats", "rhomboids", "biceps"}, Equipment: "barbell", MediaURL: "https://media.nutriforge.io/exercises/ex028.gif"},
		{ID: "ex029", Name: "Dumbbell Chest Fly", BodyPart: "chest", TargetMuscles: []string{"pectorals", "deltoids"}, Equipment: "dumbbell", MediaURL: "https://media.nutriforge.io/exercises/ex029.gif"},
		{ID: "ex030", Name: "Hanging Leg Raise", BodyPart: "core", TargetMuscles: []string{"abdominals", "hip flexors"}, Equipment: "pull-up bar", MediaURL: "https://media.nutriforge.io/exercises/ex030.gif"},
		{ID: "ex031", Name: "Treadmill Run", BodyPart: "cardio", TargetMuscles: []string{"quadriceps", "calves", "hamstrings"}, Equipment: "treadmill", MediaURL: "https://media.nutriforge.io/exercises/ex031.gif"},
		{ID: "ex032", Name: "Stationary Bike", BodyPart: "cardio", TargetMuscles: []string{"quadriceps", "calves"}, Equipment: "exercise bike", MediaURL: "https://media.nutriforge.io/exercises/ex032.gif"},
	}
}
