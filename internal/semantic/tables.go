// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package semantic

import "github.com/pdiddy/sentence-engine/pkg/types"

// DefaultCategories is the built-in category table.
var DefaultCategories = map[types.Category][]string{
	types.CatBeverage: {
		"water", "coffee", "tea", "green tea", "juice", "orange juice", "milk",
		"soda", "cola", "beer", "wine", "latte", "lemonade", "smoothie",
		"물", "커피", "녹차", "주스", "우유", "맥주", "와인",
	},
	types.CatFood: {
		"rice", "bread", "apple", "banana", "kimchi", "pizza", "sandwich",
		"noodles", "ramen", "cake", "cookie", "egg", "meat", "chicken", "fish",
		"salad", "hamburger", "steak", "soup", "pasta", "cheese", "fruit",
		"bibimbap", "bulgogi", "tteokbokki", "breakfast", "lunch", "dinner",
		"밥", "빵", "사과", "바나나", "김치", "피자", "라면", "케이크", "계란",
		"고기", "치킨", "생선", "샐러드", "햄버거", "비빔밥", "불고기", "떡볶이",
	},
	types.CatCookable: {
		"rice", "noodles", "ramen", "egg", "meat", "chicken", "fish", "soup",
		"pasta", "steak", "bulgogi", "coffee", "tea", "breakfast", "lunch", "dinner",
	},
	types.CatNonConsumable: {
		"book", "phone", "pen", "pencil", "bag", "computer", "laptop", "desk",
		"chair", "car", "bus", "key", "umbrella", "shirt", "shoes", "money",
		"ticket", "notebook", "email", "report", "homework", "letter", "map",
		"책", "전화", "휴대폰", "펜", "가방", "컴퓨터", "책상", "의자", "자동차",
		"열쇠", "우산", "돈", "표", "공책", "숙제",
	},
	types.CatTool: {
		"pen", "pencil", "knife", "scissors", "hammer", "computer", "laptop",
		"phone", "chopsticks", "spoon", "fork", "umbrella",
	},
	types.CatBodyPart: {
		"head", "hand", "hands", "foot", "feet", "arm", "leg", "eye", "eyes",
		"ear", "nose", "mouth", "stomach", "back", "tooth", "teeth",
		"머리", "손", "발", "팔", "다리", "귀", "코", "입",
	},
}
