package service

import "fmt"

// ============================================================
// Construction Rates
// ============================================================

// Ставки строительства по районам Тамил-Наду (₹ за кв. фут). Таблица
// неизменяемая, индекс по пинкоду строится один раз при старте процесса.

const defaultRate = 1500

type District struct {
	Name     string
	RateMin  int
	RateMax  int
	Pincodes []string
}

var districts = []District{
	{"Chennai", 5000, 25000, pincodeRange("6000", 1, 100)},
	{"Chengalpattu", 1500, 6000, []string{"603001", "603002", "603003", "603101", "603102", "603103", "603104", "603105", "603201", "603202", "603203", "603204", "603313"}},
	{"Kanchipuram", 1200, 5000, []string{"631501", "631502", "631551", "631552"}},
	{"Tiruvallur", 1000, 4000, []string{"602001", "602002", "602003", "602025", "602026"}},
	{"Coimbatore", 2000, 12000, pincodeRange("641", 1, 62)},
	{"Erode", 800, 3000, []string{"638001", "638002", "638003", "638101", "638102", "638151", "638316"}},
	{"Salem", 1000, 4000, []string{"636001", "636002", "636003", "636004", "636005", "636006", "636007", "636008", "636502"}},
	{"Madurai", 1200, 6000, pincodeRange("6250", 1, 20)},
	{"Tiruchirappalli", 1000, 4000, []string{"620001", "620002", "620003", "620004", "620005", "621219"}},
	{"Thanjavur", 800, 2500, []string{"613001", "613002", "613003", "613004", "613005", "614206"}},
	{"Theni", 700, 2000, []string{"625512", "625513", "625514", "625547"}},
	{"Dindigul", 700, 2500, []string{"624001", "624002", "624003", "624710"}},
	{"Vellore", 1000, 4000, []string{"632001", "632002", "632003", "632004", "632005", "632014"}},
	{"Tirunelveli", 800, 2500, []string{"627001", "627002", "627003", "627862"}},
	{"Thoothukudi", 800, 3000, []string{"628001", "628002", "628003", "628907"}},
	{"Sivaganga", 600, 2000, []string{"630001", "630002", "630611"}},
	{"Ramanathapuram", 600, 2000, []string{"623001", "623002", "623703"}},
	{"Virudhunagar", 700, 2500, []string{"626001", "626002", "626203"}},
	{"Namakkal", 800, 2500, []string{"637001", "637002", "637505"}},
	{"Krishnagiri", 900, 3000, []string{"635001", "635002", "635206"}},
	{"Dharmapuri", 800, 2500, []string{"636701", "636702", "636813"}},
	{"Cuddalore", 800, 3000, []string{"607001", "607002", "608907"}},
	{"Villupuram", 800, 2500, []string{"605601", "605602", "606901"}},
	{"Nagapattinam", 700, 2000, []string{"611001", "611002", "611108"}},
	{"Pudukkottai", 700, 2000, []string{"622001", "622002", "622501"}},
	{"Perambalur", 600, 1800, []string{"621212", "621220"}},
	{"Ariyalur", 600, 1800, []string{"621704", "621802"}},
	{"Tiruvarur", 700, 2000, []string{"610001", "610002", "610209"}},
	{"Nilgiris", 2000, 10000, []string{"643001", "643002", "643243"}},
	{"Kallakurichi", 800, 2500, []string{"606202", "606308"}},
	{"Tiruppur", 1200, 6000, []string{"641601", "641602", "641687"}},
}

var districtByPincode = buildPincodeIndex()

// Пинкоды вида <prefix><NN>, NN от from до to с ведущими нулями.
func pincodeRange(prefix string, from, to int) []string {
	width := 6 - len(prefix)
	out := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, fmt.Sprintf("%s%0*d", prefix, width, i))
	}
	return out
}

func buildPincodeIndex() map[string]*District {
	index := make(map[string]*District)
	for i := range districts {
		for _, pin := range districts[i].Pincodes {
			index[pin] = &districts[i]
		}
	}
	return index
}

// RateForPincode возвращает середину вилки ставок района, defaultRate для
// неизвестных пинкодов.
func RateForPincode(pincode string) int {
	if d, ok := districtByPincode[pincode]; ok {
		return (d.RateMin + d.RateMax) / 2
	}
	return defaultRate
}

// DistrictForPincode возвращает название района или "Unknown".
func DistrictForPincode(pincode string) string {
	if d, ok := districtByPincode[pincode]; ok {
		return d.Name
	}
	return "Unknown"
}
