// Package support holds the static support-center knowledge base that gets
// embedded into the vector store.
package support

import "culturebridge/internal/model"

var centers = []model.SupportCenter{
	{
		ID:          "danuri-helpline",
		Name:        "Danuri Call Center",
		NameKo:      "다누리콜센터",
		Type:        "counseling",
		City:        "Seoul",
		District:    "Jung-gu",
		Services:    []string{"crisis counseling", "life information", "interpretation"},
		Languages:   []string{"ko", "en", "vi", "zh", "tl", "km", "uz", "ru"},
		SessionType: []string{"online", "offline"},
		Website:     "https://www.liveinkorea.kr",
		Phone:       "1577-1366",
		Address:     "서울특별시 중구 퇴계로 173",
		Description: "결혼이민자와 다문화가족을 위한 24시간 상담 전화. 한국 생활 정보 제공과 위기 상담, 통역 지원.",
		EmbeddingText: "다문화가족 이주여성 24시간 전화상담 위기상담 생활정보 통번역 지원 " +
			"counseling hotline for immigrants and multicultural families, crisis support, interpretation",
		TargetAudience: []string{"marriage immigrants", "multicultural families"},
	},
	{
		ID:          "seoul-global-center",
		Name:        "Seoul Global Center",
		NameKo:      "서울글로벌센터",
		Type:        "community",
		City:        "Seoul",
		District:    "Jongno-gu",
		Services:    []string{"administrative help", "korean classes", "community programs", "legal counseling"},
		Languages:   []string{"ko", "en", "zh", "vi", "ja"},
		SessionType: []string{"offline"},
		Website:     "https://global.seoul.go.kr",
		Phone:       "02-2075-4180",
		Address:     "서울특별시 종로구 종로 38",
		Description: "서울 거주 외국인을 위한 종합 지원 기관. 행정 상담, 한국어 교육, 커뮤니티 프로그램 운영.",
		EmbeddingText: "서울 외국인 종합지원 행정상담 한국어교육 법률상담 커뮤니티 모임 " +
			"comprehensive support for foreign residents in Seoul, administration, korean language, community",
		TargetAudience: []string{"foreign residents"},
	},
	{
		ID:          "itaewon-global-village",
		Name:        "Itaewon Global Village Center",
		NameKo:      "이태원글로벌빌리지센터",
		Type:        "community",
		City:        "Seoul",
		District:    "Yongsan-gu",
		Services:    []string{"living support", "culture classes", "volunteer networking"},
		Languages:   []string{"ko", "en"},
		SessionType: []string{"offline"},
		Website:     "https://global.seoul.go.kr/itaewon",
		Phone:       "02-796-2459",
		Address:     "서울특별시 용산구 이태원로 224",
		Description: "이태원 지역 외국인 주민을 위한 생활 지원과 문화 교류 프로그램.",
		EmbeddingText: "이태원 외국인 생활지원 문화교류 자원봉사 네트워킹 모임 " +
			"living support and cultural exchange for foreign residents in Itaewon",
		TargetAudience: []string{"foreign residents"},
	},
	{
		ID:          "mindcafe-online",
		Name:        "MindCafe Online Counseling",
		NameKo:      "마인드카페 온라인상담",
		Type:        "counseling",
		City:        "Seoul",
		District:    "Gangnam-gu",
		Services:    []string{"psychological counseling", "text counseling", "video counseling"},
		Languages:   []string{"ko", "en"},
		SessionType: []string{"online"},
		Website:     "https://www.mindcafe.co.kr",
		Phone:       "02-555-5971",
		Address:     "서울특별시 강남구 테헤란로 415",
		Description: "익명으로 이용할 수 있는 온라인 심리 상담 플랫폼. 채팅과 화상으로 전문 상담사와 연결.",
		EmbeddingText: "온라인 심리상담 익명 채팅상담 화상상담 전문 상담사 우울 불안 스트레스 " +
			"anonymous online psychological counseling, chat and video sessions with licensed counselors",
		TargetAudience: []string{"anyone"},
	},
	{
		ID:          "gwangju-intl-center",
		Name:        "Gwangju International Center",
		NameKo:      "광주국제교류센터",
		Type:        "community",
		City:        "Gwangju",
		District:    "Dong-gu",
		Services:    []string{"community meetings", "korean classes", "counseling referral"},
		Languages:   []string{"ko", "en"},
		SessionType: []string{"offline", "online"},
		Website:     "https://www.gic.or.kr",
		Phone:       "062-226-2732",
		Address:     "광주광역시 동구 중앙로 196번길 5",
		Description: "광주 지역 외국인과 시민의 교류를 돕는 비영리 단체. 정기 모임과 한국어 수업 운영.",
		EmbeddingText: "광주 외국인 교류 커뮤니티 정기모임 한국어수업 동료지지 " +
			"community meetings and korean classes for foreigners in Gwangju, peer support",
		TargetAudience: []string{"foreign residents", "students"},
	},
	{
		ID:          "busan-foreign-worker",
		Name:        "Busan Foreign Workers Support Center",
		NameKo:      "부산외국인근로자지원센터",
		Type:        "counseling",
		City:        "Busan",
		District:    "Sasang-gu",
		Services:    []string{"labor counseling", "workplace dispute support", "korean classes"},
		Languages:   []string{"ko", "en", "vi", "zh", "uz"},
		SessionType: []string{"offline"},
		Website:     "http://www.busanfwc.or.kr",
		Phone:       "051-441-8307",
		Address:     "부산광역시 사상구 학장로 268",
		Description: "외국인 근로자의 노동 상담과 직장 내 갈등 해결을 지원하는 센터.",
		EmbeddingText: "외국인 근로자 노동상담 직장 갈등 임금 체불 산재 한국어교육 " +
			"labor counseling and workplace conflict support for foreign workers in Busan",
		TargetAudience: []string{"foreign workers"},
	},
	{
		ID:          "isf-student-forum",
		Name:        "International Student Support Forum",
		NameKo:      "유학생지원포럼",
		Type:        "community",
		City:        "Seoul",
		District:    "Seodaemun-gu",
		Services:    []string{"peer mentoring", "campus life support", "group meetings"},
		Languages:   []string{"ko", "en", "zh"},
		SessionType: []string{"online", "offline"},
		Website:     "https://www.isf.or.kr",
		Phone:       "02-393-9111",
		Address:     "서울특별시 서대문구 연세로 50",
		Description: "유학생의 대학 생활 적응을 돕는 또래 멘토링과 정기 모임. 온라인 커뮤니티도 운영.",
		EmbeddingText: "유학생 대학생활 적응 또래 멘토링 정기모임 온라인 커뮤니티 선후배 조별과제 " +
			"peer mentoring and community meetings for international students, campus life adjustment",
		TargetAudience: []string{"international students"},
	},
	{
		ID:          "kpsy-multicultural",
		Name:        "Korea Psychological Counseling Center for Migrants",
		NameKo:      "이주민심리상담센터",
		Type:        "counseling",
		City:        "Ansan",
		District:    "Danwon-gu",
		Services:    []string{"psychological counseling", "family counseling", "trauma care"},
		Languages:   []string{"ko", "en", "ru", "vi"},
		SessionType: []string{"offline", "online"},
		Website:     "https://www.migrantcare.or.kr",
		Phone:       "031-492-8110",
		Address:     "경기도 안산시 단원구 원곡동 다문화길 21",
		Description: "이주민과 그 가족을 위한 전문 심리 상담. 문화 적응 스트레스와 외로움, 가족 갈등 상담.",
		EmbeddingText: "이주민 심리상담 문화적응 스트레스 외로움 가족갈등 트라우마 전문상담 " +
			"professional psychological counseling for migrants, acculturation stress, loneliness, family conflict",
		TargetAudience: []string{"migrants", "multicultural families"},
	},
}

// Centers returns the fixture in its fixed definition order.
func Centers() []model.SupportCenter {
	return centers
}
