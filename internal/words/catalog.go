package words

var catalog = map[string][]entry{
	"countries": countries,
	"fruits_vegetables": fruitsVegetables,
	"animals": animals,
	"cars": cars,
}

var countries = []entry{
	{name: "السعودية", class: "الخليج العربي"},
	{name: "الإمارات", class: "الخليج العربي"},
	{name: "الكويت", class: "الخليج العربي"},
	{name: "قطر", class: "الخليج العربي"},
	{name: "البحرين", class: "الخليج العربي"},
	{name: "عمان", class: "الخليج العربي"},
	{name: "الأردن", class: "الشام"},
	{name: "لبنان", class: "الشام"},
	{name: "سوريا", class: "الشام"},
	{name: "فلسطين", class: "الشام"},
	{name: "العراق", class: "الشام"},
	{name: "مصر", class: "شمال أفريقيا"},
	{name: "ليبيا", class: "شمال أفريقيا"},
	{name: "تونس", class: "شمال أفريقيا"},
	{name: "الجزائر", class: "شمال أفريقيا"},
	{name: "المغرب", class: "شمال أفريقيا"},
	{name: "السودان", class: "شمال أفريقيا"},
	{name: "موريتانيا", class: "شمال أفريقيا"},
	{name: "الصومال", class: "القرن الأفريقي"},
	{name: "جيبوتي", class: "القرن الأفريقي"},
	{name: "إثيوبيا", class: "القرن الأفريقي"},
	{name: "إريتريا", class: "القرن الأفريقي"},
	{name: "تركيا", class: "الشرق الأوسط"},
	{name: "إيران", class: "الشرق الأوسط"},
	{name: "الهند", class: "جنوب آسيا"},
	{name: "باكستان", class: "جنوب آسيا"},
	{name: "بنغلاديش", class: "جنوب آسيا"},
	{name: "سريلانكا", class: "جنوب آسيا"},
	{name: "نيبال", class: "جنوب آسيا"},
	{name: "أفغانستان", class: "جنوب آسيا"},
	{name: "الصين", class: "شرق آسيا"},
	{name: "اليابان", class: "شرق آسيا"},
	{name: "كوريا الجنوبية", class: "شرق آسيا"},
	{name: "كوريا الشمالية", class: "شرق آسيا"},
	{name: "تايوان", class: "شرق آسيا"},
	{name: "منغوليا", class: "شرق آسيا"},
	{name: "تايلاند", class: "جنوب شرق آسيا"},
	{name: "ماليزيا", class: "جنوب شرق آسيا"},
	{name: "إندونيسيا", class: "جنوب شرق آسيا"},
	{name: "فيتنام", class: "جنوب شرق آسيا"},
	{name: "الفلبين", class: "جنوب شرق آسيا"},
	{name: "سنغافورة", class: "جنوب شرق آسيا"},
	{name: "كازاخستان", class: "آسيا الوسطى"},
	{name: "أوزبكستان", class: "آسيا الوسطى"},
	{name: "تركمانستان", class: "آسيا الوسطى"},
	{name: "فرنسا", class: "غرب أوروبا"},
	{name: "ألمانيا", class: "غرب أوروبا"},
	{name: "هولندا", class: "غرب أوروبا"},
	{name: "بلجيكا", class: "غرب أوروبا"},
	{name: "سويسرا", class: "غرب أوروبا"},
	{name: "النمسا", class: "غرب أوروبا"},
	{name: "إيطاليا", class: "جنوب أوروبا"},
	{name: "إسبانيا", class: "جنوب أوروبا"},
	{name: "البرتغال", class: "جنوب أوروبا"},
	{name: "اليونان", class: "جنوب أوروبا"},
	{name: "قبرص", class: "جنوب أوروبا"},
	{name: "بريطانيا", class: "شمال أوروبا"},
	{name: "أيرلندا", class: "شمال أوروبا"},
	{name: "السويد", class: "شمال أوروبا"},
	{name: "النرويج", class: "شمال أوروبا"},
	{name: "الدنمارك", class: "شمال أوروبا"},
	{name: "فنلندا", class: "شمال أوروبا"},
	{name: "أيسلندا", class: "شمال أوروبا"},
	{name: "روسيا", class: "شرق أوروبا"},
	{name: "أوكرانيا", class: "شرق أوروبا"},
	{name: "بولندا", class: "شرق أوروبا"},
	{name: "رومانيا", class: "شرق أوروبا"},
	{name: "التشيك", class: "شرق أوروبا"},
	{name: "المجر", class: "شرق أوروبا"},
	{name: "بلغاريا", class: "شرق أوروبا"},
	{name: "صربيا", class: "شرق أوروبا"},
	{name: "كرواتيا", class: "شرق أوروبا"},
	{name: "أمريكا", class: "أمريكا الشمالية"},
	{name: "كندا", class: "أمريكا الشمالية"},
	{name: "المكسيك", class: "أمريكا الشمالية"},
	{name: "البرازيل", class: "أمريكا الجنوبية"},
	{name: "الأرجنتين", class: "أمريكا الجنوبية"},
	{name: "كولومبيا", class: "أمريكا الجنوبية"},
	{name: "تشيلي", class: "أمريكا الجنوبية"},
	{name: "بيرو", class: "أمريكا الجنوبية"},
	{name: "فنزويلا", class: "أمريكا الجنوبية"},
	{name: "أستراليا", class: "أوقيانوسيا"},
	{name: "نيوزيلندا", class: "أوقيانوسيا"},
	{name: "فيجي", class: "أوقيانوسيا"},
	{name: "نيجيريا", class: "غرب أفريقيا"},
	{name: "غانا", class: "غرب أفريقيا"},
	{name: "السنغال", class: "غرب أفريقيا"},
	{name: "مالي", class: "غرب أفريقيا"},
	{name: "كينيا", class: "شرق أفريقيا"},
	{name: "تنزانيا", class: "شرق أفريقيا"},
	{name: "أوغندا", class: "شرق أفريقيا"},
	{name: "رواندا", class: "شرق أفريقيا"},
	{name: "جنوب أفريقيا", class: "جنوب أفريقيا"},
	{name: "موزمبيق", class: "جنوب أفريقيا"},
	{name: "مدغشقر", class: "جنوب أفريقيا"},
	{name: "زيمبابوي", class: "جنوب أفريقيا"},
}

var fruitsVegetables = []entry{
	{name: "تفاح", class: "فاكهة", trait: "أحمر", size: "متوسط"},
	{name: "تفاح أخضر", class: "فاكهة", trait: "أخضر", size: "متوسط"},
	{name: "برتقال", class: "فاكهة", trait: "برتقالي", size: "متوسط"},
	{name: "يوسفي", class: "فاكهة", trait: "برتقالي", size: "صغير"},
	{name: "جريب فروت", class: "فاكهة", trait: "برتقالي", size: "كبير"},
	{name: "ليمون", class: "فاكهة", trait: "أصفر", size: "صغير"},
	{name: "موز", class: "فاكهة", trait: "أصفر", size: "متوسط"},
	{name: "عنب", class: "فاكهة", trait: "بنفسجي", size: "صغير"},
	{name: "فراولة", class: "فاكهة", trait: "أحمر", size: "صغير"},
	{name: "توت", class: "فاكهة", trait: "بنفسجي", size: "صغير"},
	{name: "مانجو", class: "فاكهة", trait: "برتقالي", size: "متوسط"},
	{name: "أناناس", class: "فاكهة", trait: "أصفر", size: "كبير"},
	{name: "بطيخ", class: "فاكهة", trait: "أحمر", size: "كبير"},
	{name: "شمام", class: "فاكهة", trait: "برتقالي", size: "كبير"},
	{name: "خوخ", class: "فاكهة", trait: "برتقالي", size: "متوسط"},
	{name: "مشمش", class: "فاكهة", trait: "برتقالي", size: "صغير"},
	{name: "كمثرى", class: "فاكهة", trait: "أخضر", size: "متوسط"},
	{name: "كيوي", class: "فاكهة", trait: "أخضر", size: "صغير"},
	{name: "رمان", class: "فاكهة", trait: "أحمر", size: "متوسط"},
	{name: "تين", class: "فاكهة", trait: "بنفسجي", size: "صغير"},
	{name: "تمر", class: "فاكهة", trait: "بني", size: "صغير"},
	{name: "كرز", class: "فاكهة", trait: "أحمر", size: "صغير"},
	{name: "أفوكادو", class: "فاكهة", trait: "أخضر", size: "متوسط"},
	{name: "جوز الهند", class: "فاكهة", trait: "بني", size: "كبير"},
	{name: "جوافة", class: "فاكهة", trait: "أخضر", size: "متوسط"},
	{name: "طماطم", class: "خضروات", trait: "أحمر", size: "متوسط"},
	{name: "خيار", class: "خضروات", trait: "أخضر", size: "متوسط"},
	{name: "جزر", class: "خضروات", trait: "برتقالي", size: "متوسط"},
	{name: "بطاطس", class: "خضروات", trait: "بني", size: "متوسط"},
	{name: "بصل", class: "خضروات", trait: "بني", size: "متوسط"},
	{name: "ثوم", class: "خضروات", trait: "أبيض", size: "صغير"},
	{name: "فلفل أخضر", class: "خضروات", trait: "أخضر", size: "متوسط"},
	{name: "فلفل أحمر", class: "خضروات", trait: "أحمر", size: "متوسط"},
	{name: "باذنجان", class: "خضروات", trait: "بنفسجي", size: "متوسط"},
	{name: "كوسا", class: "خضروات", trait: "أخضر", size: "متوسط"},
	{name: "بامية", class: "خضروات", trait: "أخضر", size: "صغير"},
	{name: "ملفوف", class: "خضروات", trait: "أخضر", size: "كبير"},
	{name: "خس", class: "خضروات", trait: "أخضر", size: "متوسط"},
	{name: "سبانخ", class: "خضروات", trait: "أخضر", size: "صغير"},
	{name: "بروكلي", class: "خضروات", trait: "أخضر", size: "متوسط"},
	{name: "قرنبيط", class: "خضروات", trait: "أبيض", size: "كبير"},
	{name: "بازلاء", class: "خضروات", trait: "أخضر", size: "صغير"},
	{name: "ذرة", class: "خضروات", trait: "أصفر", size: "متوسط"},
	{name: "فجل", class: "خضروات", trait: "أحمر", size: "صغير"},
	{name: "شمندر", class: "خضروات", trait: "بنفسجي", size: "متوسط"},
	{name: "نعناع", class: "خضروات", trait: "أخضر", size: "صغير"},
	{name: "زنجبيل", class: "خضروات", trait: "بني", size: "صغير"},
	{name: "فطر", class: "خضروات", trait: "بني", size: "صغير"},
	{name: "يقطين", class: "خضروات", trait: "برتقالي", size: "كبير"},
}

var animals = []entry{
	{name: "أسد", class: "ثدييات", trait: "سافانا", size: "كبير"},
	{name: "نمر", class: "ثدييات", trait: "غابة", size: "كبير"},
	{name: "فهد", class: "ثدييات", trait: "سافانا", size: "كبير"},
	{name: "ذئب", class: "ثدييات", trait: "غابة", size: "متوسط"},
	{name: "ثعلب", class: "ثدييات", trait: "غابة", size: "متوسط"},
	{name: "دب", class: "ثدييات", trait: "غابة", size: "كبير"},
	{name: "دب قطبي", class: "ثدييات", trait: "قطبي", size: "كبير"},
	{name: "باندا", class: "ثدييات", trait: "غابة", size: "كبير"},
	{name: "فيل", class: "ثدييات", trait: "سافانا", size: "ضخم"},
	{name: "زرافة", class: "ثدييات", trait: "سافانا", size: "ضخم"},
	{name: "وحيد القرن", class: "ثدييات", trait: "سافانا", size: "ضخم"},
	{name: "فرس النهر", class: "ثدييات", trait: "مائي", size: "ضخم"},
	{name: "غزال", class: "ثدييات", trait: "سافانا", size: "متوسط"},
	{name: "حصان", class: "ثدييات", trait: "مزرعة", size: "كبير"},
	{name: "حمار وحشي", class: "ثدييات", trait: "سافانا", size: "متوسط"},
	{name: "بقرة", class: "ثدييات", trait: "مزرعة", size: "كبير"},
	{name: "جمل", class: "ثدييات", trait: "صحراء", size: "كبير"},
	{name: "خروف", class: "ثدييات", trait: "مزرعة", size: "متوسط"},
	{name: "ماعز", class: "ثدييات", trait: "مزرعة", size: "متوسط"},
	{name: "قط", class: "ثدييات", trait: "منزل", size: "صغير"},
	{name: "كلب", class: "ثدييات", trait: "منزل", size: "متوسط"},
	{name: "أرنب", class: "ثدييات", trait: "منزل", size: "صغير"},
	{name: "سنجاب", class: "ثدييات", trait: "غابة", size: "صغير"},
	{name: "قنفذ", class: "ثدييات", trait: "غابة", size: "صغير"},
	{name: "قرد", class: "ثدييات", trait: "غابة", size: "متوسط"},
	{name: "غوريلا", class: "ثدييات", trait: "غابة", size: "كبير"},
	{name: "كنغر", class: "ثدييات", trait: "سافانا", size: "كبير"},
	{name: "كوالا", class: "ثدييات", trait: "غابة", size: "صغير"},
	{name: "خفاش", class: "ثدييات", trait: "كهف", size: "صغير"},
	{name: "دولفين", class: "ثدييات", trait: "بحر", size: "كبير"},
	{name: "حوت", class: "ثدييات", trait: "بحر", size: "ضخم"},
	{name: "فقمة", class: "ثدييات", trait: "بحر", size: "متوسط"},
	{name: "قرش", class: "سمك", trait: "بحر", size: "كبير"},
	{name: "سلمون", class: "سمك", trait: "نهر", size: "متوسط"},
	{name: "تونة", class: "سمك", trait: "بحر", size: "كبير"},
	{name: "سردين", class: "سمك", trait: "بحر", size: "صغير"},
	{name: "سلحفاة", class: "زواحف", trait: "بحر", size: "متوسط"},
	{name: "تمساح", class: "زواحف", trait: "مائي", size: "كبير"},
	{name: "ثعبان", class: "زواحف", trait: "غابة", size: "متوسط"},
	{name: "كوبرا", class: "زواحف", trait: "غابة", size: "كبير"},
	{name: "حرباء", class: "زواحف", trait: "غابة", size: "صغير"},
	{name: "سحلية", class: "زواحف", trait: "صحراء", size: "صغير"},
	{name: "ضفدع", class: "برمائيات", trait: "مائي", size: "صغير"},
	{name: "سمندل", class: "برمائيات", trait: "مائي", size: "صغير"},
	{name: "نسر", class: "طيور", trait: "جبال", size: "كبير"},
	{name: "صقر", class: "طيور", trait: "صحراء", size: "متوسط"},
	{name: "بومة", class: "طيور", trait: "غابة", size: "متوسط"},
	{name: "ببغاء", class: "طيور", trait: "غابة", size: "متوسط"},
	{name: "طاووس", class: "طيور", trait: "غابة", size: "كبير"},
	{name: "بطة", class: "طيور", trait: "مائي", size: "متوسط"},
	{name: "بجعة", class: "طيور", trait: "مائي", size: "كبير"},
	{name: "فلامنجو", class: "طيور", trait: "مائي", size: "كبير"},
	{name: "دجاجة", class: "طيور", trait: "مزرعة", size: "صغير"},
	{name: "حمامة", class: "طيور", trait: "مدينة", size: "صغير"},
	{name: "غراب", class: "طيور", trait: "غابة", size: "متوسط"},
	{name: "نعامة", class: "طيور", trait: "سافانا", size: "ضخم"},
	{name: "بطريق", class: "طيور", trait: "قطبي", size: "متوسط"},
}

const model = "موديل"

var cars = []entry{
	{name: "تويوتا", class: "تويوتا"},
	{name: "تويوتا كامري", class: "تويوتا", trait: model},
	{name: "تويوتا كورولا", class: "تويوتا", trait: model},
	{name: "تويوتا لاند كروزر", class: "تويوتا", trait: model},
	{name: "تويوتا هايلكس", class: "تويوتا", trait: model},
	{name: "تويوتا يارس", class: "تويوتا", trait: model},
	{name: "هوندا", class: "هوندا"},
	{name: "هوندا أكورد", class: "هوندا", trait: model},
	{name: "هوندا سيفيك", class: "هوندا", trait: model},
	{name: "نيسان", class: "نيسان"},
	{name: "نيسان ألتيما", class: "نيسان", trait: model},
	{name: "نيسان باترول", class: "نيسان", trait: model},
	{name: "نيسان صني", class: "نيسان", trait: model},
	{name: "مازدا", class: "مازدا"},
	{name: "مازدا 3", class: "مازدا", trait: model},
	{name: "مازدا 6", class: "مازدا", trait: model},
	{name: "لكزس", class: "لكزس"},
	{name: "لكزس إي إس", class: "لكزس", trait: model},
	{name: "لكزس آر إكس", class: "لكزس", trait: model},
	{name: "هيونداي", class: "هيونداي"},
	{name: "هيونداي سوناتا", class: "هيونداي", trait: model},
	{name: "هيونداي إلنترا", class: "هيونداي", trait: model},
	{name: "هيونداي توسان", class: "هيونداي", trait: model},
	{name: "كيا", class: "كيا"},
	{name: "كيا أوبتيما", class: "كيا", trait: model},
	{name: "كيا سورينتو", class: "كيا", trait: model},
	{name: "كيا سبورتاج", class: "كيا", trait: model},
	{name: "فورد", class: "فورد"},
	{name: "فورد موستانج", class: "فورد", trait: model},
	{name: "فورد إكسبلورر", class: "فورد", trait: model},
	{name: "فورد إف 150", class: "فورد", trait: model},
	{name: "شيفروليه", class: "شيفروليه"},
	{name: "شيفروليه كامارو", class: "شيفروليه", trait: model},
	{name: "شيفروليه تاهو", class: "شيفروليه", trait: model},
	{name: "دودج", class: "دودج"},
	{name: "دودج تشارجر", class: "دودج", trait: model},
	{name: "دودج تشالنجر", class: "دودج", trait: model},
	{name: "جيب", class: "جيب"},
	{name: "جيب رانجلر", class: "جيب", trait: model},
	{name: "جيب جراند شيروكي", class: "جيب", trait: model},
	{name: "تيسلا", class: "تيسلا"},
	{name: "تيسلا موديل 3", class: "تيسلا", trait: model},
	{name: "تيسلا موديل إس", class: "تيسلا", trait: model},
	{name: "مرسيدس", class: "مرسيدس"},
	{name: "مرسيدس إس كلاس", class: "مرسيدس", trait: model},
	{name: "مرسيدس إي كلاس", class: "مرسيدس", trait: model},
	{name: "مرسيدس جي كلاس", class: "مرسيدس", trait: model},
	{name: "بي إم دبليو", class: "بي إم دبليو"},
	{name: "بي إم دبليو الفئة 3", class: "بي إم دبليو", trait: model},
	{name: "بي إم دبليو الفئة 5", class: "بي إم دبليو", trait: model},
	{name: "بي إم دبليو إكس 5", class: "بي إم دبليو", trait: model},
	{name: "أودي", class: "أودي"},
	{name: "أودي إيه 4", class: "أودي", trait: model},
	{name: "أودي كيو 7", class: "أودي", trait: model},
	{name: "فولكس واجن", class: "فولكس واجن"},
	{name: "فولكس واجن جولف", class: "فولكس واجن", trait: model},
	{name: "فولكس واجن باسات", class: "فولكس واجن", trait: model},
	{name: "بورشه", class: "بورشه"},
	{name: "بورشه 911", class: "بورشه", trait: model},
	{name: "بورشه كايين", class: "بورشه", trait: model},
	{name: "فيراري", class: "فيراري"},
	{name: "فيراري روما", class: "فيراري", trait: model},
	{name: "لامبورغيني", class: "لامبورغيني"},
	{name: "لامبورغيني أوروس", class: "لامبورغيني", trait: model},
	{name: "رينج روفر", class: "رينج روفر"},
	{name: "رينج روفر سبورت", class: "رينج روفر", trait: model},
	{name: "فولفو", class: "فولفو"},
	{name: "فولفو إكس سي 90", class: "فولفو", trait: model},
	{name: "جينيسيس", class: "جينيسيس"},
	{name: "جينيسيس جي 70", class: "جينيسيس", trait: model},
}
