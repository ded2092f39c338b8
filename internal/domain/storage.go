package domain

// Учет занимаемого места. Платные операции обязаны оплатить рост
// персистентного состояния, поэтому размер считается детерминированно
// по сериализованному представлению записей: строка = 4 байта длины +
// содержимое, int64 = 8, bool = 1, вектор = 4 байта длины.

const (
	lenPrefixBytes = 4
	int64Bytes     = 8
	boolBytes      = 1
)

func StringStorageBytes(s string) int64 {
	return lenPrefixBytes + int64(len(s))
}

// StorageBytes — рост за запись юзера в inscriptions курса
func (i Inscription) StorageBytes() int64 {
	return StringStorageBytes(i.UserID)
}

// StorageBytes — рост за запись о покупке в профиле
func (p PurchasedCourse) StorageBytes() int64 {
	return int64Bytes + boolBytes
}

// ProfileHeaderStorageBytes — рост за создание нового профиля
// (идентичность владельца плюс заголовок пустого списка покупок)
func ProfileHeaderStorageBytes(userID string) int64 {
	return StringStorageBytes(userID) + lenPrefixBytes
}
