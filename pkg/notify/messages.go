package notify

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// Message is a ready to send title and body.
type Message struct {
	Title string
	Body  string
}

// Settlement messages.

func InvoicePaid(packageName string, amount decimal.Decimal, month string) Message {
	return Message{
		Title: "خصم من المحفظة",
		Body:  fmt.Sprintf("تم خصم %s جنيه من محفظتك مقابل باقة %s لشهر %s", amount.StringFixed(2), packageName, month),
	}
}

func InsufficientFunds(packageName string, amount decimal.Decimal) Message {
	return Message{
		Title: "رصيد غير كافٍ",
		Body:  fmt.Sprintf("رصيدك غير كافٍ لدفع فاتورة باقة %s بمبلغ %s جنيه. الرجاء شحن المحفظة.", packageName, amount.StringFixed(2)),
	}
}

func NoWallet(packageName string) Message {
	return Message{
		Title: "لا توجد محفظة",
		Body:  fmt.Sprintf("لم يتم العثور على محفظتك، برجاء إنشاء محفظة لتفعيل الدفع التلقائي لباقة %s.", packageName),
	}
}

// Rent messages.

func RentPaid(amount decimal.Decimal) Message {
	return Message{
		Title: "تم دفع الإيجار",
		Body:  fmt.Sprintf("تم دفع إيجار بقيمة %s جنيه من محفظتك بنجاح.", amount.StringFixed(2)),
	}
}

func RentReceived(amount decimal.Decimal, tenantName string) Message {
	return Message{
		Title: "تم استلام الإيجار",
		Body:  fmt.Sprintf("تم استلام إيجار بقيمة %s جنيه من المستأجر %s في محفظتك.", amount.StringFixed(2), tenantName),
	}
}

// Occupancy messages.

func RentalEndedTenant(apartment, building string) Message {
	return Message{
		Title: "انتهاء فترة الإيجار",
		Body:  fmt.Sprintf("انتهت فترة إيجار الوحدة %s في العمارة %s. يرجى التواصل مع المالك للتجديد.", apartment, building),
	}
}

func RentalEndedUnionHead(apartment, building string) Message {
	return Message{
		Title: "انتهاء إيجار وحدة",
		Body:  fmt.Sprintf("انتهت فترة إيجار الوحدة %s في العمارة %s. الوحدة متاحة الآن للإيجار مرة أخرى.", apartment, building),
	}
}

func ResidentApproved(apartment, building string) Message {
	return Message{
		Title: "تم قبول طلبك",
		Body:  fmt.Sprintf("تمت الموافقة على طلب السكن في الوحدة %s بالعمارة %s.", apartment, building),
	}
}

func ResidentRejected(apartment, building string) Message {
	return Message{
		Title: "تم رفض طلبك",
		Body:  fmt.Sprintf("تم رفض طلب السكن في الوحدة %s بالعمارة %s.", apartment, building),
	}
}

// Package messages.

func PackageCreatedResident(packageName, building string) Message {
	return Message{
		Title: "باقة جديدة تم إضافتها",
		Body:  fmt.Sprintf("تم إضافة باقة '%s' إلى عمارتكم '%s'. يرجى مراجعة التفاصيل والدفع في الموعد المحدد.", packageName, building),
	}
}

func PackageCreatedUnionHead(packageName string) Message {
	return Message{
		Title: "باقة جديدة تم إضافتها",
		Body:  fmt.Sprintf("تم إضافة باقة '%s' بنجاح.", packageName),
	}
}

func PersonalPackageCreated(packageName string) Message {
	return Message{
		Title: "تم إنشاء باقة شخصية",
		Body:  fmt.Sprintf("تم إنشاء باقتك الشخصية '%s' وإصدار فاتورة لها بنجاح.", packageName),
	}
}

// Send delivers m through n.
func Send(ctx context.Context, n Notifier, userID uint, m Message) error {
	return n.Notify(ctx, userID, m.Title, m.Body)
}
