package errors

// 클라이언트에게 내려가는 에러 메시지 상수
// API 계약상 에러 응답은 {"error": string} 단일 필드이므로
// 코드 대신 메시지 문자열 자체를 상수로 관리한다.

const (
	// ==================== 인증 (401) ====================
	MsgNoToken            = "No token provided"
	MsgInvalidToken       = "Invalid token"
	MsgTokenExpired       = "Token expired"
	MsgInvalidCredentials = "Invalid credentials"
	MsgInvalidOldPassword = "Invalid old password"

	// ==================== 인가 (403) ====================
	MsgUnauthorized      = "Unauthorized"
	MsgCannotUpdateStore = "Not authorized to update this store"
	MsgCannotDeleteStore = "Not authorized to delete this store"

	// ==================== 검증 (400) ====================
	MsgAllFieldsRequired  = "All fields are required"
	MsgNameLength         = "Name must be 20-60 characters"
	MsgAddressLength      = "Address must be under 400 characters"
	MsgInvalidEmailFormat = "Invalid email format"
	MsgWeakPassword       = "Password must be 8-16 characters, include one uppercase and one special character"
	MsgInvalidRole        = "Invalid role"
	MsgInvalidRating      = "Rating must be between 1 and 5"
	MsgInvalidStoreID     = "Invalid store ID"
	MsgInvalidOwnerID     = "Invalid owner ID"
	MsgInvalidSort        = "Invalid sort parameter"

	// ==================== 충돌 (400, 클라이언트 계약 유지) ====================
	MsgEmailExists      = "Email already exists"
	MsgStoreEmailExists = "Store email already exists"

	// ==================== 리소스 (404) ====================
	MsgStoreNotFound = "Store not found"
	MsgUserNotFound  = "User not found"

	// ==================== 내부 오류 (500) ====================
	MsgServerError = "Server error"
)
