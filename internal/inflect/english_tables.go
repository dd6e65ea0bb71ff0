// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package inflect

var irregularVerbs = map[string]VerbForms{
	"be":         {Past: "was", Participle: "been", Third: "is", Gerund: "being"},
	"have":       {Past: "had", Participle: "had", Third: "has", Gerund: "having"},
	"do":         {Past: "did", Participle: "done", Third: "does"},
	"go":         {Past: "went", Participle: "gone", Third: "goes"},
	"make":       {Past: "made", Participle: "made"},
	"take":       {Past: "took", Participle: "taken"},
	"bring":      {Past: "brought", Participle: "brought"},
	"buy":        {Past: "bought", Participle: "bought"},
	"eat":        {Past: "ate", Participle: "eaten"},
	"drink":      {Past: "drank", Participle: "drunk"},
	"see":        {Past: "saw", Participle: "seen"},
	"come":       {Past: "came", Participle: "come"},
	"get":        {Past: "got", Participle: "gotten"},
	"give":       {Past: "gave", Participle: "given"},
	"know":       {Past: "knew", Participle: "known"},
	"meet":       {Past: "met", Participle: "met"},
	"read":       {Past: "read", Participle: "read"},
	"run":        {Past: "ran", Participle: "run"},
	"say":        {Past: "said", Participle: "said"},
	"sit":        {Past: "sat", Participle: "sat"},
	"sleep":      {Past: "slept", Participle: "slept"},
	"speak":      {Past: "spoke", Participle: "spoken"},
	"swim":       {Past: "swam", Participle: "swum"},
	"teach":      {Past: "taught", Participle: "taught"},
	"tell":       {Past: "told", Participle: "told"},
	"think":      {Past: "thought", Participle: "thought"},
	"write":      {Past: "wrote", Participle: "written"},
	"find":       {Past: "found", Participle: "found"},
	"leave":      {Past: "left", Participle: "left"},
	"lose":       {Past: "lost", Participle: "lost"},
	"pay":        {Past: "paid", Participle: "paid"},
	"put":        {Past: "put", Participle: "put"},
	"send":       {Past: "sent", Participle: "sent"},
	"sing":       {Past: "sang", Participle: "sung"},
	"stand":      {Past: "stood", Participle: "stood"},
	"understand": {Past: "understood", Participle: "understood"},
	"wear":       {Past: "wore", Participle: "worn"},
	"win":        {Past: "won", Participle: "won"},
	"begin":      {Past: "began", Participle: "begun"},
	"break":      {Past: "broke", Participle: "broken"},
	"choose":     {Past: "chose", Participle: "chosen"},
	"drive":      {Past: "drove", Participle: "driven"},
	"fall":       {Past: "fell", Participle: "fallen"},
	"feel":       {Past: "felt", Participle: "felt"},
	"fly":        {Past: "flew", Participle: "flown"},
	"forget":     {Past: "forgot", Participle: "forgotten"},
	"hear":       {Past: "heard", Participle: "heard"},
	"hold":       {Past: "held", Participle: "held"},
	"keep":       {Past: "kept", Participle: "kept"},
	"ride":       {Past: "rode", Participle: "ridden"},
	"sell":       {Past: "sold", Participle: "sold"},
	"spend":      {Past: "spent", Participle: "spent"},
	"wake":       {Past: "woke", Participle: "woken"},
	"cut":        {Past: "cut", Participle: "cut"},
	"let":        {Past: "let", Participle: "let"},
	"hit":        {Past: "hit", Participle: "hit"},
	"cost":       {Past: "cost", Participle: "cost"},
	"lie":        {Past: "lay", Participle: "lain", Gerund: "lying"},
}

// doublingVerbs double their final consonant before -ed and -ing.
var doublingVerbs = map[string]bool{
	"stop": true, "plan": true, "shop": true, "drop": true, "jog": true,
	"hug": true, "chat": true, "run": true, "swim": true, "sit": true,
	"get": true, "begin": true, "put": true, "cut": true, "hit": true,
	"let": true, "win": true, "prefer": true,
}

var irregularPlurals = map[string]string{
	"child":   "children",
	"person":  "people",
	"man":     "men",
	"woman":   "women",
	"foot":    "feet",
	"tooth":   "teeth",
	"mouse":   "mice",
	"fish":    "fish",
	"sheep":   "sheep",
	"deer":    "deer",
	"potato":  "potatoes",
	"tomato":  "tomatoes",
	"hero":    "heroes",
	"roof":    "roofs",
	"chief":   "chiefs",
	"chef":    "chefs",
	"belief":  "beliefs",
	"proof":   "proofs",
	"safe":    "safes",
	"cafe":    "cafes",
	"giraffe": "giraffes",
}
