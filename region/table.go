package region

// provinces is the administrative division table, ordered the way the picker lists it.
var provinces = []Province{
	{
		Name: "서울특별시",
		Cities: []City{
			{Name: "강남구", English: "Gangnam-gu, Seoul", Districts: []string{"역삼동", "개포동", "청담동", "삼성동", "대치동", "신사동", "논현동", "압구정동", "세곡동", "자곡동"}},
			{Name: "강동구", English: "Gangdong-gu, Seoul", Districts: []string{"강일동", "상일동", "명일동", "고덕동", "암사동", "천호동", "성내동", "둔촌동"}},
			{Name: "강북구", English: "Gangbuk-gu, Seoul", Districts: []string{"삼양동", "미아동", "번동", "수유동", "우이동"}},
			{Name: "강서구", English: "Gangseo-gu, Seoul", Districts: []string{"염창동", "등촌동", "화곡동", "가양동", "마곡동", "개화동", "공항동", "방화동"}},
			{Name: "관악구", English: "Gwanak-gu, Seoul", Districts: []string{"보라매동", "청림동", "청룡동", "은천동", "성현동", "중앙동", "인헌동", "남현동"}},
			{Name: "광진구", English: "Gwangjin-gu, Seoul", Districts: []string{"중곡동", "능동", "구의동", "광장동", "자양동", "화양동"}},
			{Name: "구로구", English: "Guro-gu, Seoul", Districts: []string{"신도림동", "구로동", "가리봉동", "고척동", "개봉동", "오류동", "항동"}},
			{Name: "금천구", English: "Geumcheon-gu, Seoul", Districts: []string{"가산동", "독산동", "시흥동"}},
			{Name: "노원구", English: "Nowon-gu, Seoul", Districts: []string{"월계동", "공릉동", "하계동", "중계동", "상계동"}},
			{Name: "도봉구", English: "Dobong-gu, Seoul", Districts: []string{"쌍문동", "방학동", "창동", "도봉동"}},
			{Name: "동대문구", English: "Dongdaemun-gu, Seoul", Districts: []string{"용두동", "제기동", "전농동", "답십리동", "장안동", "청량리동", "회기동", "휘경동"}},
			{Name: "동작구", English: "Dongjak-gu, Seoul", Districts: []string{"노량진동", "상도동", "상도1동", "본동", "흑석동", "동작동", "사당동", "대방동"}},
			{Name: "마포구", English: "Mapo-gu, Seoul", Districts: []string{"공덕동", "아현동", "용강동", "대흥동", "신수동", "서강동", "서교동", "합정동", "망원동", "연남동", "성산동", "상암동"}},
			{Name: "서대문구", English: "Seodaemun-gu, Seoul", Districts: []string{"충정로동", "미근동", "천연동", "신촌동", "연희동", "홍제동", "홍은동", "남가좌동", "북가좌동"}},
			{Name: "서초구", English: "Seocho-gu, Seoul", Districts: []string{"서초동", "잠원동", "반포동", "방배동", "양재동", "내곡동"}},
			{Name: "성동구", English: "Seongdong-gu, Seoul", Districts: []string{"왕십리동", "마장동", "사근동", "행당동", "응봉동", "금남동", "옥수동", "성수동"}},
			{Name: "성북구", English: "Seongbuk-gu, Seoul", Districts: []string{"성북동", "삼선동", "동선동", "돈암동", "안암동", "보문동", "정릉동", "길음동", "종암동", "하월곡동", "상월곡동"}},
			{Name: "송파구", English: "Songpa-gu, Seoul", Districts: []string{"풍납동", "거여동", "마천동", "방이동", "오금동", "송파동", "석촌동", "삼전동", "가락동", "문정동", "장지동"}},
			{Name: "양천구", English: "Yangcheon-gu, Seoul", Districts: []string{"목동", "신월동", "신정동"}},
			{Name: "영등포구", English: "Yeongdeungpo-gu, Seoul", Districts: []string{"영등포동", "여의도동", "당산동", "도림동", "문래동", "양평동", "신길동", "대림동"}},
			{Name: "용산구", English: "Yongsan-gu, Seoul", Districts: []string{"후암동", "용산동", "남영동", "청파동", "원효로동", "효창동", "용문동", "한강로동", "이촌동", "이태원동", "한남동", "서빙고동"}},
			{Name: "은평구", English: "Eunpyeong-gu, Seoul", Districts: []string{"은평동", "녹번동", "불광동", "갈현동", "구산동", "대조동", "응암동", "역촌동", "신사동", "증산동", "진관동"}},
			{Name: "종로구", English: "Jongno-gu, Seoul", Districts: []string{"청운효자동", "사직동", "삼청동", "부암동", "평창동", "무악동", "교남동", "가회동", "종로1가동", "종로2가동", "종로3가동", "종로4가동", "종로5가동", "종로6가동", "이화동", "혜화동", "명륜3가동", "창신동", "숭인동"}},
			{Name: "중구", English: "Jung-gu, Seoul", Districts: []string{"소공동", "회현동", "명동", "필동", "장충동", "광희동", "을지로동", "신당동", "다산동", "약수동", "청구동", "신당5동", "동화동", "황학동", "중림동"}},
			{Name: "중랑구", English: "Jungnang-gu, Seoul", Districts: []string{"면목동", "상봉동", "중화동", "묵동", "망우동", "신내동"}},
		},
	},
	{
		Name: "부산광역시",
		Cities: []City{
			{Name: "중구", English: "Jung-gu, Busan", Districts: []string{"중앙동", "동광동", "대청동", "보수동", "부평동", "광복동", "남포동", "영주동"}},
			{Name: "서구", English: "Seo-gu, Busan", Districts: []string{"동대신동", "서대신동", "부민동", "아미동", "초장동", "충무동", "남부민동", "암남동"}},
			{Name: "동구", English: "Dong-gu, Busan", Districts: []string{"초량동", "수정동", "좌천동", "범일동"}},
			{Name: "영도구", English: "Yeongdo-gu, Busan", Districts: []string{"남항동", "영선동", "신선동", "봉래동", "청학동", "동삼동"}},
			{Name: "부산진구", English: "Busanjin-gu, Busan", Districts: []string{"부전동", "연지동", "초읍동", "양정동", "전포동", "부암동", "당감동", "가야동", "개금동", "범천동"}},
			{Name: "동래구", English: "Dongnae-gu, Busan", Districts: []string{"수민동", "복천동", "명륜동", "온천동", "사직동", "안락동", "명장동"}},
			{Name: "남구", English: "Nam-gu, Busan", Districts: []string{"대연동", "용호동", "용당동", "감만동", "우암동", "문현동"}},
			{Name: "북구", English: "Buk-gu, Busan", Districts: []string{"구포동", "금곡동", "화명동", "덕천동", "만덕동"}},
			{Name: "해운대구", English: "Haeundae-gu, Busan", Districts: []string{"우동", "중동", "좌동", "송정동", "반여동", "반송동", "재송동"}},
			{Name: "사하구", English: "Saha-gu, Busan", Districts: []string{"괴정동", "당리동", "하단동", "장림동", "신평동", "다대동"}},
			{Name: "금정구", English: "Geumjeong-gu, Busan", Districts: []string{"부곡동", "장전동", "구서동", "금성동", "회동동", "남산동", "선두구동"}},
			{Name: "강서구", English: "Gangseo-gu, Busan", Districts: []string{"대저동", "가락동", "천가동", "지사동", "강동동", "식만동", "불암동"}},
			{Name: "연제구", English: "Yeonje-gu, Busan", Districts: []string{"거제동", "연산동"}},
			{Name: "수영구", English: "Suyeong-gu, Busan", Districts: []string{"남천동", "수영동", "망미동", "광안동"}},
			{Name: "사상구", English: "Sasang-gu, Busan", Districts: []string{"삼락동", "모라동", "덕포동", "괘법동", "감전동", "주례동", "학장동", "엄궁동"}},
			{Name: "기장군", English: "Gijang-gun, Busan", Districts: []string{"기장읍", "장안읍", "정관읍", "일광면", "철마면"}},
		},
	},
	{
		Name: "경기도",
		Cities: []City{
			{Name: "수원시", English: "Suwon-si, Gyeonggi-do", Districts: []string{"장안구", "영통구", "팔달구", "연무구"}},
			{Name: "성남시", English: "Seongnam-si, Gyeonggi-do", Districts: []string{"수정구", "중원구", "분당구"}},
			{Name: "고양시", English: "Goyang-si, Gyeonggi-do", Districts: []string{"덕양구", "일산동구", "일산서구"}},
			{Name: "용인시", English: "Yongin-si, Gyeonggi-do", Districts: []string{"처인구", "기흥구", "수지구"}},
			{Name: "부천시", English: "Bucheon-si, Gyeonggi-do", Districts: []string{"원미구", "소사구", "오정구"}},
			{Name: "안산시", English: "Ansan-si, Gyeonggi-do", Districts: []string{"상록구", "단원구"}},
			{Name: "안양시", English: "Anyang-si, Gyeonggi-do", Districts: []string{"만안구", "동안구"}},
			{Name: "남양주시", English: "Namyangju-si, Gyeonggi-do", Districts: []string{"와부읍", "조안면", "오남읍", "양수리", "진접읍", "진건읍", "별내면", "퇴계원면", "화도읍", "수동면", "호평동", "평내동", "금곡동", "일패동", "이패동", "삼패동", "다산1동", "다산2동", "지금동", "도농동", "별내동"}},
			{Name: "화성시", English: "Hwaseong-si, Gyeonggi-do", Districts: []string{"노진면", "매송면", "비봉면", "마도면", "송산면", "서신면", "남양읍", "우정읍", "향남읍", "양감면", "정남면", "장안면", "팔탄면", "봉담읍", "동탄면", "병점1동", "병점2동", "반송동", "기배동", "진안동", "동탄1동", "동탄2동", "동탄3동", "동탄4동", "동탄5동", "동탄6동", "동탄7동", "동탄8동"}},
			{Name: "평택시", English: "Pyeongtaek-si, Gyeonggi-do", Districts: []string{"중앙동", "서정동", "평택동", "송탄동", "지산동", "비전동", "세교동", "통복동", "청북읍", "포승읍", "고덕면", "오성면", "현덕면", "서탄면", "진위면", "안중읍", "팽성읍"}},
			{Name: "의정부시", English: "Uijeongbu-si, Gyeonggi-do", Districts: []string{"의정부1동", "의정부2동", "호원1동", "호원2동", "장암동", "신곡1동", "신곡2동", "송산1동", "송산2동", "송산3동", "자금동", "가능동", "흥선동", "녹양동", "민락동", "금오동", "효자동", "고산동"}},
			{Name: "시흥시", English: "Siheung-si, Gyeonggi-do", Districts: []string{"대야동", "신천동", "신현동", "은행동", "정왕1동", "정왕2동", "정왕3동", "정왕4동", "과림동", "월곶동", "장현동", "연성동", "능곡동"}},
			{Name: "파주시", English: "Paju-si, Gyeonggi-do", Districts: []string{"파주읍", "문산읍", "법원읍", "조리읍", "탄현면", "파평면", "적성면", "장단면", "군내면", "광탄면", "금촌1동", "금촌2동", "금촌3동", "교하동", "운정1동", "운정2동", "운정3동"}},
			{Name: "광명시", English: "Gwangmyeong-si, Gyeonggi-do", Districts: []string{"광명1동", "광명2동", "광명3동", "광명4동", "광명5동", "광명6동", "광명7동", "철산1동", "철산2동", "철산3동", "철산4동", "하안1동", "하안2동", "하안3동", "하안4동", "소하1동", "소하2동", "학온동"}},
			{Name: "김포시", English: "Gimpo-si, Gyeonggi-do", Districts: []string{"김포1동", "김포2동", "사우동", "풍무동", "장기동", "마산동", "운양동", "구래동", "고촌읍", "양촌읍", "대곶면", "월곶면", "하성면", "통진읍"}},
			{Name: "군포시", English: "Gunpo-si, Gyeonggi-do", Districts: []string{"군포1동", "군포2동", "당동", "오금동", "산본1동", "산본2동", "금정동", "재궁동", "부곡동", "대야미동", "궁내동"}},
			{Name: "하남시", English: "Hanam-si, Gyeonggi-do", Districts: []string{"신장1동", "신장2동", "천현동", "덕풍1동", "덕풍2동", "덕풍3동", "상산곡동", "하산곡동", "감북동", "감일동", "초이동", "창우동", "풍산동", "선동", "미사1동", "미사2동"}},
			{Name: "오산시", English: "Osan-si, Gyeonggi-do", Districts: []string{"오산동", "원동", "세교동", "초평동", "은계동", "양산동", "내삼미동", "외삼미동", "금암동", "누읍동", "가수동", "서동", "궐동", "갈곶동"}},
			{Name: "이천시", English: "Icheon-si, Gyeonggi-do", Districts: []string{"중리동", "증포동", "관고동", "갈산동", "창전동", "부발읍", "신둔면", "백사면", "호법면", "설성면", "마장면", "율면"}},
			{Name: "안성시", English: "Anseong-si, Gyeonggi-do", Districts: []string{"중앙동", "석정동", "당왕동", "월곡동", "공도읍", "보개면", "금광면", "서운면", "미양면", "대덕면", "양성면", "원곡면", "일죽면", "죽산면", "삼죽면"}},
			{Name: "의왕시", English: "Uiwang-si, Gyeonggi-do", Districts: []string{"내손동", "포일동", "고천동", "오전동", "왕곡동", "청계동", "부곡동"}},
			{Name: "구리시", English: "Guri-si, Gyeonggi-do", Districts: []string{"인창동", "교문동", "수택동", "아천동", "갈매동"}},
			{Name: "양주시", English: "Yangju-si, Gyeonggi-do", Districts: []string{"양주동", "회천동", "덕정동", "고읍동", "백석읍", "은현면", "남면", "광적면", "장흥면"}},
			{Name: "동두천시", English: "Dongducheon-si, Gyeonggi-do", Districts: []string{"생연동", "중앙동", "불현동", "송내동", "보산동", "상패동", "하패동", "탑동동"}},
			{Name: "과천시", English: "Gwacheon-si, Gyeonggi-do", Districts: []string{"중앙동", "갈현동", "별양동", "과천동", "원문동", "막계동", "문원동", "관문동"}},
			{Name: "여주시", English: "Yeoju-si, Gyeonggi-do", Districts: []string{"여흥동", "오학동", "중앙동", "상동", "하동", "능서면", "흥천면", "가남읍", "점동면", "여주읍", "대신면", "북내면", "산북면"}},
			{Name: "연천군", English: "Yeoncheon-gun, Gyeonggi-do", Districts: []string{"연천읍", "전곡읍", "청산면", "백학면", "미산면", "왕징면", "군남면", "신서면", "중면"}},
			{Name: "가평군", English: "Gapyeong-gun, Gyeonggi-do", Districts: []string{"가평읍", "청평면", "상면", "하면", "북면", "조종면", "설악면"}},
			{Name: "양평군", English: "Yangpyeong-gun, Gyeonggi-do", Districts: []string{"양평읍", "강상면", "강하면", "양서면", "서종면", "단월면", "청운면", "용문면", "지제면", "옥천면", "중미산면", "개군면"}},
			{Name: "포천시", English: "Pocheon-si, Gyeonggi-do", Districts: []string{"포천동", "소흘읍", "가산면", "창수면", "영중면", "이동면", "화현면", "군내면", "내촌면", "신북면", "영북면", "관인면", "일동면", "중면", "추가면"}},
		},
	},
	{
		Name: "인천광역시",
		Cities: []City{
			{Name: "중구", English: "Jung-gu, Incheon", Districts: []string{"신흥동", "도원동", "유동", "송학동", "운서동", "을왕동"}},
			{Name: "동구", English: "Dong-gu, Incheon", Districts: []string{"만석동", "화평동", "송현동", "금곡동"}},
			{Name: "미추홀구", English: "Michuhol-gu, Incheon", Districts: []string{"숭의동", "용현동", "학익동", "도화동", "주안동"}},
			{Name: "연수구", English: "Yeonsu-gu, Incheon", Districts: []string{"옥련동", "선학동", "연수동", "청학동", "동춘동", "송도동"}},
			{Name: "남동구", English: "Namdong-gu, Incheon", Districts: []string{"구월동", "간석동", "만수동", "서창동", "장수동", "논현동", "고잔동"}},
			{Name: "부평구", English: "Bupyeong-gu, Incheon", Districts: []string{"부평동", "산곡동", "청천동", "갈산동", "삼산동", "일신동"}},
			{Name: "계양구", English: "Gyeyang-gu, Incheon", Districts: []string{"계산동", "계양동", "작전동", "서운동", "효성동", "박촌동"}},
			{Name: "서구", English: "Seo-gu, Incheon", Districts: []string{"가좌동", "석남동", "청라동", "경서동", "검단동"}},
		},
	},
	{
		Name: "강원특별자치도",
		Cities: []City{
			{Name: "춘천시", English: "Chuncheon-si, Gangwon-do", Districts: []string{"요선동", "조운동", "온의동", "근화동", "효자동", "석사동", "퇴계동", "우두동", "동면", "동내면", "남면", "서면", "남산면", "사북면", "신북읍", "북산면"}},
			{Name: "원주시", English: "Wonju-si, Gangwon-do", Districts: []string{"중앙동", "원동", "개운동", "명륜동", "단계동", "태장동", "반곡동", "봉산동", "우산동", "행구동", "소초면", "호저면", "지정면", "문막읍", "새별읍"}},
			{Name: "강릉시", English: "Gangneung-si, Gangwon-do", Districts: []string{"홍제동", "중앙동", "성남동", "경포동", "교동", "옥천동", "초당동", "운정동", "구정면", "성산면", "왕산면", "옥계면", "주문진읍", "연곡면"}},
			{Name: "동해시", English: "Donghae-si, Gangwon-do", Districts: []string{"천곡동", "송정동", "부곡동", "삼화동", "망상동", "북평동", "묵호동"}},
			{Name: "속초시", English: "Sokcho-si, Gangwon-do", Districts: []string{"노학동", "조양동", "금호동", "대포동", "청호동", "영랑동", "도문동"}},
		},
	},
	{
		Name: "충청북도",
		Cities: []City{
			{Name: "청주시", English: "Cheongju-si, Chungcheongbuk-do", Districts: []string{"상당구", "서원구", "흥덕구", "청원구"}},
			{Name: "충주시", English: "Chungju-si, Chungcheongbuk-do", Districts: []string{"성내동", "중앙동", "칠금동", "연수동", "목행동", "직동", "단월동", "호암동", "교현동", "용탄동", "주덕읍", "산척면", "수안보면", "앙성면", "노은면", "동량면", "중원대로", "신니면", "가금면", "엄정면", "살미면", "대소원면"}},
			{Name: "제천시", English: "Jecheon-si, Chungcheongbuk-do", Districts: []string{"명동", "청전동", "중앙동", "영천동", "화산동", "신월동", "장락동", "고명동", "의림동", "모산동", "교동", "자작동", "송학면", "덕산면", "한수면", "청풍면", "수산면", "백운면", "봉양읍", "금성면"}},
		},
	},
	{
		Name: "충청남도",
		Cities: []City{
			{Name: "천안시", English: "Cheonan-si, Chungcheongnam-do", Districts: []string{"동남구", "서북구"}},
			{Name: "공주시", English: "Gongju-si, Chungcheongnam-do", Districts: []string{"웅진동", "중학동", "신관동", "금성동", "옥룡동", "반포면", "의당면", "정안면", "우성면", "탄천면", "계룡면", "유구읍", "이인면", "사곡면"}},
			{Name: "보령시", English: "Boryeong-si, Chungcheongnam-do", Districts: []string{"동대동", "서린동", "명천동", "대천동", "신흑동", "웅천읍", "주포면", "청라면", "오천면", "남포면", "주교면", "미산면", "성주면", "천북면"}},
		},
	},
	{
		Name: "전라북도",
		Cities: []City{
			{Name: "전주시", English: "Jeonju-si, Jeollabuk-do", Districts: []string{"완산구", "덕진구"}},
			{Name: "군산시", English: "Gunsan-si, Jeollabuk-do", Districts: []string{"중앙동", "조촌동", "경암동", "개정동", "수송동", "나운동", "소룡동", "개복동", "미성동", "옥산면", "회현면", "대야면", "개정면", "성산면", "나포면", "옥도면", "임피면", "서수면"}},
			{Name: "익산시", English: "Iksan-si, Jeollabuk-do", Districts: []string{"중앙동", "모현동", "인화동", "부송동", "남중동", "어양동", "송학동", "신동", "영등동", "마동", "팔봉동", "함라면", "성당면", "낭산면", "여산면", "금마면", "왕궁면", "용안면", "춘포면", "웅포면", "망성면", "황등면", "용동면", "오산면"}},
		},
	},
	{
		Name: "전라남도",
		Cities: []City{
			{Name: "목포시", English: "Mokpo-si, Jeollanam-do", Districts: []string{"용해동", "산정동", "용당동", "대안동", "연산동", "연동", "하당동", "석현동", "옥암동", "이로동", "부흥동", "죽교동", "상동", "유달동", "온금동", "서산동"}},
			{Name: "여수시", English: "Yeosu-si, Jeollanam-do", Districts: []string{"중앙동", "광림동", "서강동", "대교동", "문수동", "남산동", "시전동", "한려동", "여서동", "여천동", "주삼동", "미평동", "둔덕동", "소라면", "율촌면", "화양면", "남면", "화정면", "돌산읍"}},
			{Name: "순천시", English: "Suncheon-si, Jeollanam-do", Districts: []string{"중앙동", "향동", "매곡동", "왕조동", "조곡동", "풍덕동", "연향동", "덕연동", "인월동", "도사동", "해룡면", "황전면", "송광면", "주암면", "낙안면", "보성강변", "외서면", "상사면", "별량면", "승주읍"}},
		},
	},
	{
		Name: "경상북도",
		Cities: []City{
			{Name: "포항시", English: "Pohang-si, Gyeongsangbuk-do", Districts: []string{"남구", "북구"}},
			{Name: "경주시", English: "Gyeongju-si, Gyeongsangbuk-do", Districts: []string{"월성동", "동천동", "황남동", "용강동", "보문동", "성건동", "중부동", "계림동", "황오동", "배동", "탑동", "불국동", "진현동", "용황동", "건천읍", "감포읍", "양북면", "양남면", "내남면", "서면", "산내면", "외동읍", "안강읍", "현곡면", "산대남면"}},
			{Name: "안동시", English: "Andong-si, Gyeongsangbuk-do", Districts: []string{"중구동", "명륜동", "용상동", "평화동", "서구동", "송현동", "강남동", "옥동", "태화동", "정하동", "법흥동", "임하면", "도산면", "서후면", "일직면", "남선면", "남후면", "길안면", "북후면", "예안면", "풍천면", "녹전면", "와룡면", "임동면", "풍산읍", "풍북면"}},
			{Name: "구미시", English: "Gumi-si, Gyeongsangbuk-do", Districts: []string{"송정동", "원평동", "지산동", "인동동", "도량동", "선산읍", "고아읍", "옥성면", "도개면", "무을면", "해평면", "산동면", "상모사곡면", "장천면"}},
		},
	},
	{
		Name: "경상남도",
		Cities: []City{
			{Name: "창원시", English: "Changwon-si, Gyeongsangnam-do", Districts: []string{"의창구", "성산구", "마산합포구", "마산회원구", "진해구"}},
			{Name: "진주시", English: "Jinju-si, Gyeongsangnam-do", Districts: []string{"중앙동", "상대동", "하대동", "상봉동", "하봉동", "초장동", "평거동", "신안동", "이현동", "충무공동", "성북동", "칠암동", "강남동", "옥봉동"}},
			{Name: "통영시", English: "Tongyeong-si, Gyeongsangnam-do", Districts: []string{"중앙동", "서호동", "미수동", "봉평동", "명정동", "무전동", "도천동", "인평동", "광도면", "욕지면", "한산면", "사량면", "고성면"}},
			{Name: "사천시", English: "Sacheon-si, Gyeongsangnam-do", Districts: []string{"동서동", "벌용동", "선구동", "정동면", "곤양면", "곤명면", "서포면", "사남면", "용현면"}},
		},
	},
	{
		Name: "제주특별자치도",
		Cities: []City{
			{Name: "제주시", English: "Jeju-si, Jeju-do", Districts: []string{"일도동", "이도동", "삼도동", "용담동", "건입동", "화북동", "삼양동", "봉개동", "아라동", "오라동", "연동", "노형동", "외도동", "이호동", "도두동", "애월읍", "구좌읍", "조천읍", "한림읍", "한경면", "추자면", "우도면"}},
			{Name: "서귀포시", English: "Seogwipo-si, Jeju-do", Districts: []string{"동홍동", "서홍동", "대륜동", "중앙동", "천지동", "효돈동", "영천동", "토평동", "서강동", "중문동", "예래동", "하원동", "강정동", "법환동", "색달동", "위미동", "남원읍", "성산읍", "안덕면", "대정읍", "한남읍", "표선면"}},
		},
	},
}

// shortNames maps colloquial Korean city names to the English names the weather API accepts.
var shortNames = map[string]string{
	"서울":  "Seoul",
	"부산":  "Busan",
	"인천":  "Incheon",
	"대구":  "Daegu",
	"대전":  "Daejeon",
	"광주":  "Gwangju",
	"울산":  "Ulsan",
	"세종":  "Sejong",
	"수원":  "Suwon",
	"성남":  "Seongnam",
	"고양":  "Goyang",
	"용인":  "Yongin",
	"부천":  "Bucheon",
	"안산":  "Ansan",
	"안양":  "Anyang",
	"남양주": "Namyangju",
	"화성":  "Hwaseong",
	"평택":  "Pyeongtaek",
	"의정부": "Uijeongbu",
	"시흥":  "Siheung",
	"파주":  "Paju",
	"광명":  "Gwangmyeong",
	"김포":  "Gimpo",
	"군포":  "Gunpo",
	"하남":  "Hanam",
	"오산":  "Osan",
	"이천":  "Icheon",
	"안성":  "Anseong",
	"의왕":  "Uiwang",
	"구리":  "Guri",
	"양주":  "Yangju",
	"동두천": "Dongducheon",
	"과천":  "Gwacheon",
	"여주":  "Yeoju",
	"포천":  "Pocheon",
	"춘천":  "Chuncheon",
	"원주":  "Wonju",
	"강릉":  "Gangneung",
	"동해":  "Donghae",
	"속초":  "Sokcho",
	"청주":  "Cheongju",
	"충주":  "Chungju",
	"제천":  "Jecheon",
	"천안":  "Cheonan",
	"공주":  "Gongju",
	"보령":  "Boryeong",
	"전주":  "Jeonju",
	"군산":  "Gunsan",
	"익산":  "Iksan",
	"목포":  "Mokpo",
	"여수":  "Yeosu",
	"순천":  "Suncheon",
	"포항":  "Pohang",
	"경주":  "Gyeongju",
	"안동":  "Andong",
	"구미":  "Gumi",
	"창원":  "Changwon",
	"진주":  "Jinju",
	"통영":  "Tongyeong",
	"사천":  "Sacheon",
	"제주":  "Jeju",
	"서귀포": "Seogwipo",
}
