// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package intent

// DefaultRules are the built-in keyword tables, highest priority first.
var DefaultRules = []Rule{
	{Tag: "directions", Keywords: []string{
		"where", "bus", "subway", "station", "street", "road", "left", "right",
		"map", "taxi", "way", "directions", "near", "far",
		"어디", "버스", "지하철", "길", "역", "택시", "지도", "왼쪽", "오른쪽",
	}},
	{Tag: "school", Keywords: []string{
		"school", "teacher", "homework", "exam", "test", "class", "student",
		"study", "library", "lesson",
		"학교", "선생님", "숙제", "시험", "수업", "학생", "공부", "도서관",
	}},
	{Tag: "business", Keywords: []string{
		"meeting", "office", "company", "email", "report", "boss", "coworker",
		"work", "presentation", "client",
		"회의", "회사", "이메일", "보고서", "사장님", "동료", "출근", "발표",
	}},
	{Tag: "daily", Keywords: []string{
		"eat", "drink", "food", "coffee", "home", "cook", "sleep", "breakfast",
		"lunch", "dinner", "friend", "weekend",
		"밥", "커피", "집", "먹-", "마시-", "요리", "친구", "주말", "아침", "점심", "저녁",
	}},
}

// stopWords are dropped from keywords.
var stopWords = map[string]bool{
	"the": true, "an": true, "to": true, "of": true, "in": true, "on": true,
	"at": true, "is": true, "are": true, "am": true, "was": true, "be": true,
	"and": true, "or": true, "for": true, "with": true, "it": true, "my": true,
	"me": true, "you": true, "your": true, "do": true, "does": true, "i'm": true,
	"want": true, "please": true, "can": true, "how": true, "what": true,
	"나": true, "저": true, "좀": true, "그": true, "이": true,
}

// koreanParticles are checked longest first.
var koreanParticles = []string{
	"에서는", "에서", "에게", "한테", "으로", "까지", "부터", "이랑",
	"을", "를", "은", "는", "이", "가", "에", "로", "도", "와", "과", "랑",
}

// afterBatchim records, for alternating particles, whether the form follows
// a final consonant.
var afterBatchim = map[string]bool{
	"을": true, "은": true, "이": true, "과": true, "이랑": true, "으로": true,
	"를": false, "는": false, "가": false, "와": false, "랑": false,
}
