// groop-admin/internal/groupform/options.go
package groupform

import "github.com/zafarich/groop-admin/models"

// Option - элемент выпадающего списка формы.
type Option struct {
	Value string `json:"value"`
	Title string `json:"title"`
}

// DayOption - день недели для строки расписания.
type DayOption struct {
	Value int    `json:"value"`
	Title string `json:"title"`
}

var PaymentTypes = []Option{
	{Value: string(models.PaymentMonthlySameDate), Title: "Har oy bir xil sanada"},
	{Value: string(models.PaymentOneTime), Title: "Butun kurs davri uchun(masalan 2 oy uchun)"},
	{Value: string(models.PaymentLessonBased), Title: "Darslar asosida"},
}

var TrialPaymentTypes = []Option{
	{Value: string(models.TrialFree), Title: "Bepul sinov darsi"},
	{Value: string(models.TrialPaid), Title: "Pullik sinov darsi"},
	{Value: string(models.TrialOff), Title: "Sinov darsi yo'q (Birdan to'lov)"},
}

var TelegramResourceTypes = []Option{
	{Value: string(models.ResourcePrivateGroup), Title: "Yopiq guruh (Private Group)"},
	{Value: string(models.ResourcePrivateChannel), Title: "Yopiq kanal (Private Channel)"},
}

var DaysOfWeek = []DayOption{
	{Value: 1, Title: "Dushanba"},
	{Value: 2, Title: "Seshanba"},
	{Value: 3, Title: "Chorshanba"},
	{Value: 4, Title: "Payshanba"},
	{Value: 5, Title: "Juma"},
	{Value: 6, Title: "Shanba"},
	{Value: 7, Title: "Yakshanba"},
}

// paymentTypeDescriptions - пояснения к схемам оплаты. START_TO_END_OF_MONTH
// платформа пока не отдаёт в списке типов, но описание уже использует.
var paymentTypeDescriptions = map[models.PaymentType]string{
	"START_TO_END_OF_MONTH":       "Dars boshlanish sanasidan oyni oxirigacha hisoblanadi va keyingi oylar to'liq 1 oy hisoblanadi.",
	models.PaymentMonthlySameDate: "Dars boshlangan sanadan boshlab keyingi oyning shu sanasigacha 1 oy hisoblanadi.",
	models.PaymentOneTime:         "Butun kurs davri uchun shu narx bir marta yechiladi",
	models.PaymentLessonBased:     "Bunda yozgan darslar sonidan kelib chiqib 1 oylik pul hisoblanadi. Masalan: 12 ta dars 1 oy deb hisoblanadi.",
}

// PaymentTypeDescription возвращает пояснение к схеме оплаты,
// пустую строку для неизвестной схемы.
func PaymentTypeDescription(t models.PaymentType) string {
	return paymentTypeDescriptions[t]
}
