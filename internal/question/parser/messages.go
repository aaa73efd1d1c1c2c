package parser

// User-facing diagnostics. The platform UI is Arabic.
const (
	MsgTextRequired         = "نص السؤال مطلوب"
	MsgTextTooLong          = "نص السؤال يجب ألا يتجاوز 500 حرف"
	MsgTextShort            = "نص السؤال قصير جداً"
	MsgAnswerRequired       = "الإجابة الصحيحة مطلوبة"
	MsgAnswerNotInOptions   = "الإجابة الصحيحة غير موجودة في الخيارات"
	MsgTooFewOptions        = "يجب أن يحتوي سؤال الاختيار من متعدد على خيارين على الأقل"
	MsgTooManyOptions       = "لا يمكن أن يتجاوز عدد الخيارات 10"
	MsgDuplicateOptions     = "توجد خيارات مكررة"
	MsgEmptyOption          = "يوجد خيار فارغ"
	MsgInvalidMediaURL      = "رابط الوسائط غير صالح"
	MsgNoCorrectMarker      = "لم يتم تحديد الإجابة الصحيحة بعلامة ✓"
	MsgManyCorrectMarkers   = "تم تحديد أكثر من إجابة صحيحة، سيتم اعتماد الأولى"
	MsgExtraSegments        = "تم تجاهل الأجزاء الزائدة بعد الخيارات"
	MsgInvalidJSON          = "صيغة JSON غير صالحة"
	MsgJSONNotObject        = "يجب أن يكون JSON كائناً يمثل سؤالاً واحداً"
	MsgOptionsNotArray      = "يجب أن تكون الخيارات مصفوفة"
	MsgUnknownFormat        = "تعذر التعرف على تنسيق السؤال"
	MsgTrueFalseAnswer      = "إجابة سؤال الصواب والخطأ يجب أن تكون صواب أو خطأ"
	SuggestFormats          = "استخدم أحد التنسيقات: السؤال | الإجابة | الخيارات، أو JSON، أو Markdown، أو السؤال: ... الإجابة: ..."
	SuggestAddAnswerOption  = "أضف الإجابة الصحيحة إلى قائمة الخيارات"
	SuggestRemoveDuplicates = "احذف الخيارات المكررة"
	SuggestMarkCorrect      = "أضف ✓ بعد الخيار الصحيح"
	SuggestLongerText       = "اكتب سؤالاً أوضح وأكثر تفصيلاً"
	SuggestCheckCase        = "هل تقصد الخيار: "
)
