package assistant

// Schedule templates carry one "HH:MM - HH:MM activity" line per block so
// the planner can import them.
var scheduleTemplates = map[TimeOfDay][]string{
	TimeMorning: {
		`**Energizing Morning Routine**

06:00 - 06:15 Wake up gently, drink water, light stretching
06:15 - 06:45 Morning exercise or yoga
06:45 - 07:15 Refreshing shower and get dressed
07:15 - 07:45 Nutritious breakfast with protein
07:45 - 08:00 Review daily goals and set intentions
08:00 - 08:30 Tackle the most important task
08:30 - 09:00 Check email and answer urgent items
09:00 - 10:30 Deep work session on the priority project`,
		`**Productive Morning Schedule**

05:45 - 06:15 Early wake-up, meditation and gratitude practice
06:15 - 06:45 Cardio workout or brisk walk
06:45 - 07:15 Shower and get ready
07:15 - 07:45 Healthy breakfast
07:45 - 08:15 Reading or learning something new
08:15 - 09:45 High-priority work while the mind is fresh
09:45 - 10:00 Coffee break and light snack`,
	},
	TimeAfternoon: {
		`**Focused Afternoon Plan**

12:00 - 12:45 Lunch away from the desk
12:45 - 13:00 Short walk outside
13:00 - 14:30 Collaborative work or meetings
14:30 - 14:45 Stretch and hydrate
14:45 - 16:15 Deep work on the current project
16:15 - 16:30 Quick break and healthy snack
16:30 - 17:30 Wrap up tasks and plan tomorrow`,
	},
	TimeEvening: {
		`**Relaxing Evening Schedule**

17:00 - 18:00 Transition from work with a light walk
18:00 - 19:00 Dinner preparation and mindful eating
19:00 - 19:30 Clean up and organize the space
19:30 - 20:30 Personal hobby or creative time
20:30 - 21:00 Connect with family or friends
21:00 - 21:30 Light reading or a podcast
21:30 - 22:00 Prepare tomorrow's priorities
22:00 - 22:30 Wind down routine and gratitude practice`,
		`**Productive Evening Routine**

17:30 - 18:30 Exercise or gym session
18:30 - 19:00 Shower and change
19:00 - 20:00 Healthy dinner with protein
20:00 - 20:30 Review the day's accomplishments
20:30 - 21:30 Learning time with a course or book
21:30 - 22:00 Plan tomorrow's top three priorities
22:00 - 22:30 Relaxing music or gentle yoga`,
	},
	TimeNight: {
		`**Late Night Study Session**

22:00 - 22:15 Set up the desk, water and notes
22:15 - 23:05 Deep study block on the hardest topic
23:05 - 23:15 Stretch break away from screens
23:15 - 00:05 Practice problems and active recall
00:05 - 00:15 Light snack and rest
00:15 - 01:05 Review notes and summarize key points
01:05 - 01:30 Plan tomorrow and wind down`,
	},
	TimeMorningEve: {
		`**Morning and Evening Routine**

05:00 - 05:20 Gentle wake-up and hydration
05:20 - 05:40 Meditation and gratitude practice
05:40 - 06:30 Exercise session
06:30 - 07:20 Shower and healthy breakfast
07:20 - 09:00 Focused study or work block
18:00 - 18:30 Light movement after the day
18:30 - 19:30 Dinner and social time
19:30 - 20:30 Personal projects and learning
20:30 - 21:00 Reflection and planning for tomorrow
21:30 - 22:00 Wind down for sleep`,
	},
	TimeMorningNight: {
		`**Morning and Night Plan**

06:00 - 06:30 Wake up, hydrate and stretch
06:30 - 07:00 Breakfast and review today's goals
07:00 - 08:30 Deep work on the priority task
21:00 - 21:30 Review what got done today
21:30 - 22:30 Quiet reading or study
22:30 - 23:00 Prepare for restful sleep`,
	},
	TimeEveningNight: {
		`**Evening into Night Plan**

18:00 - 19:00 Dinner and a short walk
19:00 - 20:30 Focused study block
20:30 - 20:45 Break and stretch
20:45 - 22:00 Practice and revision
22:00 - 22:30 Plan tomorrow and relax
22:30 - 23:00 Screens off and wind down`,
	},
	TimeUnspecified: {
		`**Optimized Daily Schedule**

06:00 - 07:00 Morning routine and energizing breakfast
07:00 - 09:00 High-priority deep work
09:00 - 09:15 Movement break and hydration
09:15 - 11:00 Continued focused work session
11:00 - 12:00 Administrative tasks and planning
12:00 - 13:00 Lunch break and mental reset
13:00 - 14:30 Collaborative work or meetings
14:45 - 16:30 Creative work and problem-solving
16:45 - 18:00 Wrap-up tasks and planning for tomorrow
18:00 - 19:00 Exercise or physical activity
19:00 - 20:00 Dinner and family time
21:00 - 22:00 Relaxation and preparation for sleep`,
		`**Productivity-Focused Schedule**

05:30 - 06:30 Morning routine and goal setting
06:30 - 08:00 Most important project work
08:00 - 08:15 Active break and breakfast
09:00 - 10:30 Deep work session
10:30 - 10:45 Movement break
10:45 - 12:00 Collaborative work
12:00 - 13:00 Lunch and mental break
13:00 - 14:30 Administrative work
14:45 - 16:30 Learning and skill development
17:00 - 18:00 Exercise and physical activity`,
	},
}

// Templates for the other intents. %s is replaced with the detected subject.
var intentTemplates = map[Intent][]string{
	IntentExplanation: {
		`**Understanding %s**

Here is a simple way to think about it:

- Start with the core idea and the problem it solves
- Look at one concrete example before the general rule
- Connect it to something you already know
- Test yourself by explaining it back in your own words

Tell me which part of %s you want to go deeper on and I will break it down step by step.`,
	},
	IntentKnowledge: {
		`**About %s**

A good way to learn %s is to build a map before the details:

- The key concepts and the vocabulary they use
- Where it shows up in everyday life
- The common misconceptions beginners run into
- A short list of trusted books or courses

Ask a more specific question and I will focus on that.`,
		`**Exploring %s**

%s is a broad area. Most people get the most out of it by:

- Picking one small question to answer first
- Reading a beginner-friendly overview
- Practicing with real examples
- Reviewing what they learned the next day

What would you like to know first?`,
	},
	IntentAdvice: {
		`**Some Thoughtful Advice**

- Get clear on what outcome you actually want
- List the options and what each one costs you
- Talk it through with someone you trust
- Pick the smallest next step and take it today
- Review in a week and adjust

Share more details and I can tailor this to your situation.`,
		`**Here Is How I Would Approach It**

1. Write the decision down in one sentence
2. Note what matters most to you in the result
3. Pick the option that best fits those priorities
4. Commit to it for a fixed trial period

Small, consistent steps usually beat big plans.`,
	},
	IntentProblem: {
		`**Problem-Solving Approach**

Let's work through this systematically:

1. Define the problem clearly and what "solved" looks like
2. Gather the facts and note what you have already tried
3. Brainstorm several possible causes and fixes
4. Try the cheapest fix first and observe the result
5. Reflect on what worked so it does not happen again

Describe the problem in more detail and we can go through these steps together.`,
	},
	IntentCreative: {
		`**Creative Session**

Let's get the ideas flowing:

- Start with a single image, feeling or question
- Set a ten-minute timer and write without editing
- Pick the most surprising line and build from it
- Share a draft and I will help shape it

What kind of piece do you have in mind?`,
		`**Idea Generator**

Here are a few prompts to get started:

- A stranger finds a letter addressed to their future self
- A city where it rains only on Tuesdays
- A robot that collects forgotten words

Pick one, or tell me your theme and I will suggest more.`,
	},
	IntentGeneral: {
		`Hello! I'm your FocusFlow assistant.

I can help you with:
- Creating schedules and planning your day
- Explaining concepts simply
- Giving advice and solving problems step by step
- Creative writing and brainstorming

Try "Plan my study schedule for tonight" or "Explain how photosynthesis works". What would you like to do?`,
		`Hi there! Ready when you are.

Popular things to ask:
- Planning a morning or evening routine
- Learning about a new topic
- Working through a problem
- Brainstorming ideas

What's on your mind?`,
	},
}
