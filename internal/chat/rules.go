// Package chat implements the rule-based responder behind the public
// site's chat widget. Classification is stateless: each message is
// lowercased and matched against an ordered rule table, first match
// wins, with emergency detection always evaluated first.
package chat

import (
	"strings"
)

// Rule pairs a keyword group with its canned reply.
type Rule struct {
	Name     string
	Keywords []string
	Reply    string
}

const emergencyReply = "⚠️ בעת חירום, אנא התקשרו מיד ל-101 (קריאות חירום)\n\nזו בעיה רפואית חמורה הדורשת טיפול מיידי. אל תחכו - התקשרו כעת!\n\nאם אפשר לכם, ספרו להם שזו תגובה אלרגית או בעיית נשימה."

const fallbackReply = "תודה על פנייתך! 👋\n\nאני עוזר וירטואלי של מרפאת ד״ר אנה ברמלי. אוכל לעזור לך עם:\n✓ שעות פעילות וכתובת\n✓ סוגי שירותים\n✓ קביעת תורים\n✓ שאלות כלליות על אלרגיות\n\nאם יש לך שאלה חמורה, התקשר ל-101.\n\nמה אוכל לעזור?"

// rules is evaluated top to bottom. The emergency rule must stay first:
// an emergency keyword overrides any other match in the same message.
var rules = []Rule{
	{
		Name: "emergency",
		Keywords: []string{
			"חירום", "קריאה", "צריך עזרה", "עזרה", "דחוף", "חיוני", "איום", "ביסקופ",
			"emergency", "urgent", "critical", "help", "pain", "כאב חזה", "קשיי נשימה",
			"קשיי נשימה חמורים", "תגובה אלרגית חמורה", "הלם", "אנפילקסיס",
		},
		Reply: emergencyReply,
	},
	{
		Name:     "hours",
		Keywords: []string{"שעות", "פתוחה", "מתי"},
		Reply:    "שעות הפעילות:\n📅 ראשון - חמישי: 08:00 - 18:00\n📅 שישי: 08:00 - 13:00\n\nנשמח לעמוד לרשותכם!",
	},
	{
		Name:     "address",
		Keywords: []string{"כתובת", "היכן", "מיקום"},
		Reply:    "📍 כתובתנו:\nרחוב הרופאים 15, תל אביב\n\n☎️ טלפון: 03-1234567\n📧 אימייל: info@dr-brameli.co.il",
	},
	{
		Name:     "phone",
		Keywords: []string{"טלפון", "התקשר"},
		Reply:    "☎️ מספר הטלפון שלנו: 03-1234567\n\nתוכלו להתקשר כדי:\n✓ לקבוע תור\n✓ לשאול שאלות\n✓ לדבר עם הצוות",
	},
	{
		Name:     "services",
		Keywords: []string{"שירות", "טיפול", "איך"},
		Reply:    "אנו מתמחים ב:\n✓ אלרגיות מזון\n✓ אסתמה\n✓ מחלות עור אלרגיות\n✓ אימונולוגיה קלינית\n✓ אלרגיות ילדים\n✓ אלרגיות מבוגרים\n\nהתעניינתם בשירות מסוים?",
	},
	{
		Name:     "immunotherapy",
		Keywords: []string{"חיסון", "immunotherapy", "אימונותרפיה"},
		Reply:    "אימונותרפיה (חיסון אלרגיה) היא טיפול אפקטיבי שמהווה:\n✓ טיפול ארוך טווח\n✓ הפחתת תסמינים\n✓ שיפור איכות החיים\n\nמתעניין? אנא קבעו תור לייעוץ עם ד״ר ברמלי.",
	},
	{
		Name:     "testing",
		Keywords: []string{"בדיקה", "סוגי בדיקות"},
		Reply:    "סוגי בדיקות אלרגיה:\n1️⃣ בדיקת עור (Prick Test) - מהירה וביטוחה\n2️⃣ בדיקת דם - בדיקה ממצה\n\nשתי הבדיקות משלימות אחת את השנייה ונותנות תמונה מלאה.",
	},
	{
		Name:     "pricing",
		Keywords: []string{"מחיר", "עלות", "כמה"},
		Reply:    "לשאלות על מחירים וביטוח:\n☎️ אנא התקשרו ל- 03-1234567\n\nאנחנו עובדים עם רוב תוכניות הביטוח העיקריות.",
	},
	{
		Name:     "booking",
		Keywords: []string{"תור", "קביעת", "עכשיו"},
		Reply:    "כדי לקבוע תור:\n☎️ התקשרו: 03-1234567\n📧 שלחו אימייל: info@dr-brameli.co.il\n🌐 או השתמשו בטופס צרו קשר בעמוד זה\n\nנשמח לראות אתכם!",
	},
}

// Reply classifies a visitor message and returns the canned response.
func Reply(input string) string {
	lower := strings.ToLower(input)
	for _, rule := range rules {
		if containsAny(lower, rule.Keywords) {
			return rule.Reply
		}
	}
	return fallbackReply
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
